package console

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/ports"
)

var _ ports.Speaker = (*Speaker)(nil)

func TestSpeakerWritesOneLinePerReply(t *testing.T) {
	var out bytes.Buffer
	speaker := NewSpeaker(&out)

	require.NoError(t, speaker.Speak(context.Background(), domain.LocaleEnUS, "Your tasks (2): buy milk,\n call mom"))
	require.NoError(t, speaker.Speak(context.Background(), domain.LocaleTaIN, "வணக்கம்!"))

	assert.Equal(t, "[SPEAK en-US] Your tasks (2): buy milk, call mom\n[SPEAK ta-IN] வணக்கம்!\n", out.String())
}

func TestSpeakerSkipsBlankText(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewSpeaker(&out).Speak(context.Background(), domain.LocaleEnUS, " \n "))
	assert.Empty(t, out.String())
}

func TestSpeakerHonoursCanceledContext(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSpeaker(&out).Speak(ctx, domain.LocaleEnUS, "hello")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestSpeakerWrapsWriteError(t *testing.T) {
	err := NewSpeaker(failingWriter{}).Speak(context.Background(), domain.LocaleEnUS, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write spoken line")
}
