package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/companion/internal/domain"
)

func TestDetectorDetect(t *testing.T) {
	t.Parallel()

	d := NewDetector(defaultBundle(t))

	tests := []struct {
		name      string
		utterance string
		current   domain.Locale
		want      domain.Locale
	}{
		{name: "no keywords keeps current", utterance: "add task: buy milk", current: domain.LocaleTaIN, want: domain.LocaleTaIN},
		{name: "british keywords", utterance: "Cheers mate, lovely biscuit", current: domain.LocaleEnUS, want: domain.LocaleEnGB},
		{name: "american keywords", utterance: "My favorite cookie, buddy", current: domain.LocaleEnGB, want: domain.LocaleEnUS},
		{name: "tamil keywords", utterance: "வணக்கம், நல்லா இருக்கீங்களா?", current: domain.LocaleEnUS, want: domain.LocaleTaIN},
		{name: "plain tamil keeps sri lankan", utterance: "வணக்கம்", current: domain.LocaleTaLK, want: domain.LocaleTaLK},
		{name: "plain tamil keeps indian", utterance: "வணக்கம், நன்றி", current: domain.LocaleTaIN, want: domain.LocaleTaIN},
		{name: "sri lankan keywords", utterance: "ஓம், எங்கட ஆக்கள் சுகமா?", current: domain.LocaleEnUS, want: domain.LocaleTaLK},
		{name: "tie keeps current", utterance: "colour or color", current: domain.LocaleTaLK, want: domain.LocaleTaLK},
		{name: "whole words only", utterance: "a colorful flatbread", current: domain.LocaleTaIN, want: domain.LocaleTaIN},
		{name: "case folded", utterance: "AWESOME VACATION", current: domain.LocaleEnGB, want: domain.LocaleEnUS},
		{name: "unsupported current falls back", utterance: "hello", current: domain.Locale("fr-FR"), want: domain.LocaleEnUS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Detect(tt.utterance, tt.current))
		})
	}
}

func TestDetectorKeywordsAreData(t *testing.T) {
	t.Parallel()

	bundle := domain.Bundle{Locales: []domain.LocaleBundle{
		{Locale: domain.LocaleEnUS, Keywords: []string{"howdy"}},
		{Locale: domain.LocaleEnGB, Keywords: []string{"innit"}},
	}}
	d := NewDetector(bundle)

	assert.Equal(t, domain.LocaleEnGB, d.Detect("nice weather innit", domain.LocaleEnUS))
	assert.Equal(t, domain.LocaleEnUS, d.Detect("howdy howdy innit", domain.LocaleEnGB))
}
