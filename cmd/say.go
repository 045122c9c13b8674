package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/companion/internal/application"
	"github.com/bnema/companion/internal/engine"
)

type sayOutput struct {
	Utterance string `json:"utterance"`
	Text      string `json:"text"`
	Speech    string `json:"speech"`
	Intent    string `json:"intent,omitempty"`
	Locale    string `json:"locale"`
	Category  string `json:"category"`
	Entity    string `json:"entity,omitempty"`
	Joke      string `json:"joke,omitempty"`
}

type sayResult struct {
	Replies []sayOutput     `json:"replies"`
	Memory  *memorySnapshot `json:"memory,omitempty"`
}

type memorySnapshot struct {
	Locale string   `json:"locale"`
	Mood   string   `json:"mood"`
	Tasks  []string `json:"tasks"`
	Notes  []string `json:"notes"`
	Jokes  []string `json:"jokes"`
	Topics []string `json:"topics"`
	Turns  int      `json:"turns"`
}

func newSayCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		summary bool
	)

	cmd := &cobra.Command{
		Use:     "say <utterance>...",
		Short:   "Run each argument as one turn of a single conversation",
		Example: `  companion say "hello" "add task: buy milk" "what are my tasks?"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.newService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			replies, err := service.Say(cmd.Context(), application.SayCommand{Utterances: args})
			if err != nil {
				return err
			}

			if asJSON {
				result := sayResult{Replies: toSayOutputs(args, replies)}
				if summary {
					result.Memory = toSnapshot(service.Summary())
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			for _, reply := range replies {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), reply.Text); err != nil {
					return err
				}
			}
			if summary {
				return writeMemory(cmd, a, service.Summary(), 0)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print replies as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "show the memory summary afterwards")
	return cmd
}

func toSayOutputs(utterances []string, replies []engine.Reply) []sayOutput {
	out := make([]sayOutput, 0, len(replies))
	for i, reply := range replies {
		out = append(out, sayOutput{
			Utterance: utterances[i],
			Text:      reply.Text,
			Speech:    reply.Speech,
			Intent:    string(reply.Intent),
			Locale:    string(reply.Locale),
			Category:  string(reply.Category),
			Entity:    reply.Entity,
			Joke:      reply.Joke,
		})
	}
	return out
}

func toSnapshot(summary application.MemorySummary) *memorySnapshot {
	return &memorySnapshot{
		Locale: string(summary.Locale),
		Mood:   string(summary.Mood),
		Tasks:  summary.Tasks,
		Notes:  summary.Notes,
		Jokes:  summary.Jokes,
		Topics: summary.Topics,
		Turns:  summary.Turns,
	}
}
