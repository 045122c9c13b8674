package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/companion/internal/adapters/bundle/file"
	"github.com/bnema/companion/internal/domain"
)

// fixedPicker always picks the same index, wrapped to the candidate count.
type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

func defaultBundle(t *testing.T) domain.Bundle {
	t.Helper()

	bundle, err := file.LoadDefaults()
	require.NoError(t, err)
	resolved, err := bundle.ResolveInheritance()
	require.NoError(t, err)
	return resolved
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	e, err := New(defaultBundle(t), append([]Option{WithPicker(fixedPicker(0))}, opts...)...)
	require.NoError(t, err)
	return e
}
