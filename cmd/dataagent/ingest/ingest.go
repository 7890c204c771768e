// Package ingestcmder provides the ingest command for indexing handbook
// documents into the vector store.
package ingestcmder

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/bootstrap"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/cliui"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/ingest"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
)

type ingestCommander struct {
	configDir  string
	chunkChars int
	dryRun     bool
	debug      bool
}

const ingestLongDesc string = `Index handbook documents into the vector store.

Walks the given directory for .md and .txt files, splits each document
into paragraph-aligned chunks, embeds the chunks, and stores them so the
policy search tool can retrieve them.

Examples:
  dataagent ingest ./handbook
  dataagent ingest ./handbook --chunk-chars 800
  dataagent ingest ./handbook --dry-run`

const ingestShortDesc string = "Index handbook documents into the vector store"

func NewIngestCmd() *cobra.Command {
	cmder := &ingestCommander{}

	cmd := &cobra.Command{
		Use:   "ingest <dir>",
		Short: ingestShortDesc,
		Long:  ingestLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			return cmder.run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().IntVar(&cmder.chunkChars, "chunk-chars", ingest.DefaultChunkChars, "Target chunk size in characters")
	cmd.Flags().BoolVar(&cmder.dryRun, "dry-run", false, "Chunk documents without writing to the store")

	return cmd
}

func (c *ingestCommander) run(ctx context.Context, dir string) error {
	log := logger.New(logger.WithDebug(c.debug))

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.FromViper(v)

	runtime, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer runtime.Close()

	ingester := ingest.NewIngester(runtime.Embedder, runtime.VectorDriver, ingest.Options{
		ChunkChars: c.chunkChars,
		DryRun:     c.dryRun,
	}, log)

	var result *ingest.Result
	err = cliui.Step(os.Stdout, fmt.Sprintf("Indexing %s", dir), func() error {
		var stepErr error
		result, stepErr = ingester.Run(ctx, dir)
		return stepErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s Indexed %d chunks from %d files\n",
		cliui.SuccessMark,
		result.Chunks,
		result.Files,
	)

	for _, skipped := range result.Skipped {
		fmt.Printf("  %s Skipped %s\n", cliui.FailMark, skipped)
	}

	fmt.Println()
	return nil
}
