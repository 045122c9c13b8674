package application

import "github.com/bnema/companion/internal/domain"

type MemorySummary struct {
	SessionID string
	Locale    domain.Locale
	Mood      domain.Mood
	Tasks     []string
	Notes     []string
	Jokes     []string
	Topics    []string
	Turns     int
}

func (m MemorySummary) TaskCount() int { return len(m.Tasks) }
func (m MemorySummary) NoteCount() int { return len(m.Notes) }
func (m MemorySummary) JokeCount() int { return len(m.Jokes) }
