// Package chatcmder provides the chat command for an interactive
// question-and-answer session with the agent.
package chatcmder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/bootstrap"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/cliui"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
)

var (
	userPrompt      = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true).Render("you> ")
	assistantPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("agent> ")
)

type chatCommander struct {
	configDir string
	debug     bool
}

const chatLongDesc string = `Start an interactive chat session with the agent.

Each message is classified and routed to the sales warehouse, the policy
handbook, or answered directly. The conversation history is kept for the
duration of the session only.

Examples:
  dataagent chat
  dataagent chat --debug`

const chatShortDesc string = "Interactive chat session with the agent"

func NewChatCmd() *cobra.Command {
	cmder := &chatCommander{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: chatShortDesc,
		Long:  chatLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			return cmder.run(cmd.Context())
		},
	}

	return cmd
}

func (c *chatCommander) run(ctx context.Context) error {
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

	fmt.Println()
	fmt.Printf("  %s %s\n",
		cliui.KeyStyle.Render("Model:"),
		cliui.NameStyle.Render(cfg.Oracle.Model),
	)
	fmt.Printf("  %s\n\n", cliui.DimStyle.Render("Type your question and press Enter. /exit or Ctrl+D to quit."))

	var history []agent.Message
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(userPrompt)
		if !scanner.Scan() {
			// EOF or error
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			break
		}

		turn := append(history, agent.Message{
			Role:    agent.RoleUser,
			Content: input,
		})

		updated, err := runtime.Pipeline.Run(ctx, turn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n", cliui.FailMark, err)
			// Drop the failed user message so the question can be retried
			continue
		}
		history = updated

		answer := updated[len(updated)-1].Content
		rendered, err := cliui.RenderMarkdown(answer)
		if err != nil {
			rendered = answer
		}

		fmt.Print(assistantPrompt)
		fmt.Println(strings.TrimSpace(rendered))
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	return nil
}
