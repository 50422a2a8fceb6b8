package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

const shellPrompt = "stockroom> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one live catalog",
		Long:  "Start an interactive session. Every catalog command (list, add, update, restock, procure, stats, low-stock) is available; changes last until you type quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderProducts(sess.Stock.Products(), sess.Stock.LowStockThreshold()))
			fmt.Fprintln(out, "Type 'help' for commands, 'quit' to leave.")

			return runShell(a, cmd.InOrStdin(), out)
		},
	}
}

func runShell(a *app, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		words, err := splitWords(line)
		if err != nil {
			fmt.Fprint(out, tui.RenderError(err))
			continue
		}

		sub := newShellRootCmd(a)
		sub.SetArgs(words)
		sub.SetOut(out)
		sub.SetErr(out)
		if err := sub.Execute(); err != nil {
			fmt.Fprint(out, tui.RenderError(err))
		}
	}
}

// newShellRootCmd builds a fresh command tree for one shell line so flag
// values never carry over between lines.
func newShellRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stockroom",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(catalogCommands(a)...)
	return cmd
}

// splitWords splits a shell line on whitespace, keeping single- or
// double-quoted text together.
func splitWords(line string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		quote  rune
		inWord bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
