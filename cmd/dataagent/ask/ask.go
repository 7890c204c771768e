// Package askcmder provides the ask command for one-shot questions.
package askcmder

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/bootstrap"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/cliui"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
)

type askCommander struct {
	configDir   string
	showContext bool
	debug       bool
}

const askLongDesc string = `Ask the agent a single question and print the answer.

The question is classified and routed to the sales warehouse, the policy
handbook, or answered directly.

Examples:
  dataagent ask "What is the severance policy?"
  dataagent ask "What is the total revenue by region?"
  dataagent ask --show-context "Which region had the most transactions?"`

const askShortDesc string = "Ask the agent a single question"

func NewAskCmd() *cobra.Command {
	cmder := &askCommander{}

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: askShortDesc,
		Long:  askLongDesc,
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

	cmd.Flags().BoolVar(&cmder.showContext, "show-context", false, "Print the retrieved context before the answer")

	return cmd
}

func (c *askCommander) run(ctx context.Context, question string) error {
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

	state, err := runtime.Pipeline.Ask(ctx, question)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	fmt.Printf("\n  %s %s\n",
		cliui.KeyStyle.Render("Decision:"),
		cliui.ValueStyle.Render(string(state.Decision)),
	)

	if c.showContext {
		fmt.Printf("\n  %s\n%s\n",
			cliui.KeyStyle.Render("Context:"),
			cliui.DimStyle.Render(state.Context),
		)
	}

	rendered, err := cliui.RenderMarkdown(state.Answer)
	if err != nil {
		// Fall back to the raw answer if the terminal renderer fails.
		fmt.Printf("\n%s\n", state.Answer)
		return nil
	}

	fmt.Fprint(os.Stdout, rendered)

	return nil
}
