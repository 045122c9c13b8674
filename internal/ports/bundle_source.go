package ports

import (
	"context"

	"github.com/bnema/companion/internal/domain"
)

type BundleSource interface {
	Load(ctx context.Context) (domain.Bundle, error)
}
