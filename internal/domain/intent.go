package domain

import "fmt"

type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentAddTask        Intent = "add_task"
	IntentAddNote        Intent = "add_note"
	IntentTellJoke       Intent = "tell_joke"
	IntentRecallTasks    Intent = "recall_tasks"
	IntentRecallNotes    Intent = "recall_notes"
	IntentRecallJokes    Intent = "recall_jokes"
	IntentRecallTopics   Intent = "recall_topics"
	IntentSwitchLanguage Intent = "switch_language"
	IntentHelpTopic      Intent = "help_topic"
	IntentSmallTalk      Intent = "small_talk"
)

var IntentOrder = []Intent{
	IntentSwitchLanguage,
	IntentGreeting,
	IntentAddTask,
	IntentAddNote,
	IntentTellJoke,
	IntentRecallTasks,
	IntentRecallNotes,
	IntentRecallJokes,
	IntentRecallTopics,
	IntentHelpTopic,
	IntentSmallTalk,
}

func (i Intent) Valid() bool {
	for _, known := range IntentOrder {
		if i == known {
			return true
		}
	}
	return false
}

func (i Intent) Extracts() bool {
	return i == IntentAddTask || i == IntentAddNote
}

func (i Intent) Recall() bool {
	switch i {
	case IntentRecallTasks, IntentRecallNotes, IntentRecallJokes, IntentRecallTopics:
		return true
	default:
		return false
	}
}

func ParseIntent(raw string) (Intent, error) {
	intent := Intent(raw)
	if !intent.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, raw)
	}
	return intent, nil
}
