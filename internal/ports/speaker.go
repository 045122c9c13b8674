package ports

import (
	"context"

	"github.com/bnema/companion/internal/domain"
)

type Speaker interface {
	Speak(ctx context.Context, locale domain.Locale, text string) error
}
