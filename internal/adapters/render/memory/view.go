package memory

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/companion/internal/application"
)

type RenderOptions struct {
	MaxItems int
}

func renderView(summary application.MemorySummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Companion Memory"),
		s.header.Render(fmt.Sprintf("locale: %s  mood: %s  turns: %d", summary.Locale, moodLabel(string(summary.Mood), s), summary.Turns)),
	}

	lines = append(lines,
		s.section.Render(renderList("Tasks", summary.Tasks, opts, s)),
		s.section.Render(renderList("Notes", summary.Notes, opts, s)),
		s.section.Render(renderList("Jokes", summary.Jokes, opts, s)),
		s.section.Render(renderList("Recent topics", summary.Topics, opts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderList(label string, items []string, opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), " ", s.count.Render(fmt.Sprintf("(%d)", len(items)))),
	}

	if len(items) == 0 {
		parts = append(parts, s.empty.Render("  none yet"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	shown := items
	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		shown = items[len(items)-opts.MaxItems:]
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		parts = append(parts, s.more.Render(fmt.Sprintf("  … %d earlier", hidden)))
	}
	for _, item := range shown {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.bullet.Render("  • "), s.item.Render(item)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func moodLabel(mood string, s styles) string {
	if mood == "" {
		mood = "neutral"
	}
	style, ok := s.mood[mood]
	if !ok {
		return mood
	}
	return style.Render(mood)
}
