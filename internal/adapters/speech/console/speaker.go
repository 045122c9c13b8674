package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/companion/internal/domain"
)

type Speaker struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSpeaker(w io.Writer) *Speaker {
	return &Speaker{w: w}
}

func (s *Speaker) Speak(ctx context.Context, locale domain.Locale, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := strings.Join(strings.Fields(text), " ")
	if line == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "[SPEAK %s] %s\n", locale, line); err != nil {
		return fmt.Errorf("write spoken line: %w", err)
	}
	return nil
}
