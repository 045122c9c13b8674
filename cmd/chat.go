package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	memoryrender "github.com/bnema/companion/internal/adapters/render/memory"
	"github.com/bnema/companion/internal/application"
)

const (
	chatQuit   = "/quit"
	chatMemory = "/memory"
)

func newChatCmd(a *app) *cobra.Command {
	var maxItems int

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the companion line by line",
		Long:  "Reads one utterance per line from stdin. Type /memory to see what the companion remembers and /quit to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.newService(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				if _, err := fmt.Fprint(out, "> "); err != nil {
					return err
				}
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				switch line {
				case chatQuit:
					return nil
				case chatMemory:
					if err := writeMemory(cmd, a, service.Summary(), maxItems); err != nil {
						return err
					}
					continue
				}

				reply := service.Respond(cmd.Context(), line)
				if _, err := fmt.Fprintln(out, reply.Text); err != nil {
					return err
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().IntVar(&maxItems, "max-items", 10, "entries shown per list in /memory (0 for all)")
	return cmd
}

func writeMemory(cmd *cobra.Command, a *app, summary application.MemorySummary, maxItems int) error {
	rendered, err := a.memoryRenderer(summary, memoryrender.RenderOptions{MaxItems: maxItems})
	if err != nil {
		return fmt.Errorf("render memory: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
