package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/companion/internal/domain"
)

func TestClassifierClassify(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier(defaultBundle(t))
	require.NoError(t, err)

	tests := []struct {
		utterance string
		want      domain.Intent
	}{
		{"switch to Tamil", domain.IntentSwitchLanguage},
		{"Please speak in British English", domain.IntentSwitchLanguage},
		{"could you switch to tamil", domain.IntentSwitchLanguage},
		{"remind me to go to tamil class", domain.IntentAddTask},
		{"take a note: we go to english lessons at 5", domain.IntentAddNote},
		{"I have to go to english class tomorrow", domain.IntentSmallTalk},
		{"add task: switch to english keyboard", domain.IntentAddTask},
		{"தமிழுக்கு மாறு", domain.IntentSwitchLanguage},
		{"hello", domain.IntentGreeting},
		{"Good Morning!", domain.IntentGreeting},
		{"வணக்கம்", domain.IntentGreeting},
		{"add task: buy milk", domain.IntentAddTask},
		{"Remind me to call mom", domain.IntentAddTask},
		{"todo: file taxes", domain.IntentAddTask},
		{"பணி சேர்: பால் வாங்க", domain.IntentAddTask},
		{"take a note: meeting at 3pm", domain.IntentAddNote},
		{"குறிப்பு: கூட்டம் 3 மணிக்கு", domain.IntentAddNote},
		{"tell me a joke", domain.IntentTellJoke},
		{"ஜோக் சொல்", domain.IntentTellJoke},
		{"what are my tasks?", domain.IntentRecallTasks},
		{"what are my notes?", domain.IntentRecallNotes},
		{"which jokes did you tell?", domain.IntentRecallJokes},
		{"what did we talk about", domain.IntentRecallTopics},
		{"help", domain.IntentHelpTopic},
		{"the weather is nice", domain.IntentSmallTalk},
		{"", domain.IntentSmallTalk},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Classify(tt.utterance))
		})
	}
}

func TestClassifierPriorityBeatsPosition(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier(defaultBundle(t))
	require.NoError(t, err)

	assert.Equal(t, domain.IntentGreeting, c.Classify("add task: say hi to grandma"))
	assert.Equal(t, domain.IntentGreeting, c.Classify("hi, add task: call mom"))
	assert.Equal(t, domain.IntentSwitchLanguage, c.Classify("hello, switch to tamil"))
}

func TestClassifierDoesNotFoldTamil(t *testing.T) {
	t.Parallel()

	bundle := domain.Bundle{Locales: []domain.LocaleBundle{
		{Locale: domain.LocaleEnUS},
		{Locale: domain.LocaleTaIN, Patterns: map[domain.Intent][]string{
			domain.IntentHelpTopic: {`HELPME`},
		}},
	}}
	c, err := NewClassifier(bundle)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentHelpTopic, c.Classify("HELPME"))
	assert.Equal(t, domain.IntentSmallTalk, c.Classify("helpme"))
}

func TestNewClassifierReportsEveryBadPattern(t *testing.T) {
	t.Parallel()

	bundle := domain.Bundle{Locales: []domain.LocaleBundle{
		{Locale: domain.LocaleEnUS, Patterns: map[domain.Intent][]string{
			domain.IntentGreeting: {`(hello`},
			domain.IntentAddTask:  {`[task`},
		}},
	}}

	_, err := NewClassifier(bundle)
	require.ErrorIs(t, err, domain.ErrInvalidBundle)
	assert.Contains(t, err.Error(), "(hello")
	assert.Contains(t, err.Error(), "[task")
}
