package domain

import (
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const TopicWindow = 3

type Turn struct {
	ID        ulid.ULID
	Utterance string
	Intent    Intent
	At        time.Time
}

type Session struct {
	ID     string
	Locale Locale
	Mood   Mood

	tasks  []string
	notes  []string
	jokes  []string
	topics []Turn

	entropy io.Reader
}

func NewSession(locale Locale) *Session {
	if !locale.Supported() {
		locale = DefaultLocale
	}

	return &Session{
		ID:      uuid.NewString(),
		Locale:  locale,
		Mood:    MoodNeutral,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (s *Session) SetLocale(locale Locale) {
	if locale.Supported() {
		s.Locale = locale
	}
}

func (s *Session) SetMood(mood Mood) {
	if mood.Valid() {
		s.Mood = mood
	}
}

func (s *Session) Apply(intent Intent, entity string) bool {
	if entity == "" {
		return false
	}

	switch intent {
	case IntentAddTask:
		s.tasks = append(s.tasks, entity)
	case IntentAddNote:
		s.notes = append(s.notes, entity)
	default:
		return false
	}

	return true
}

func (s *Session) RecordJoke(joke string) {
	if joke == "" {
		return
	}
	s.jokes = append(s.jokes, joke)
}

func (s *Session) RecordTopic(utterance string, intent Intent, at time.Time) Turn {
	turn := Turn{
		ID:        ulid.MustNew(ulid.Timestamp(at), s.entropy),
		Utterance: utterance,
		Intent:    intent,
		At:        at,
	}
	s.topics = append(s.topics, turn)
	return turn
}

func (s *Session) Read(kind Intent) []string {
	switch kind {
	case IntentRecallTasks:
		return cloneStrings(s.tasks)
	case IntentRecallNotes:
		return cloneStrings(s.notes)
	case IntentRecallJokes:
		return cloneStrings(s.jokes)
	case IntentRecallTopics:
		start := len(s.topics) - TopicWindow
		if start < 0 {
			start = 0
		}
		recent := make([]string, 0, len(s.topics)-start)
		for _, turn := range s.topics[start:] {
			recent = append(recent, turn.Utterance)
		}
		return recent
	default:
		return nil
	}
}

func (s *Session) Turns() []Turn {
	turns := make([]Turn, len(s.topics))
	copy(turns, s.topics)
	return turns
}

func (s *Session) LastJoke() (string, bool) {
	if len(s.jokes) == 0 {
		return "", false
	}
	return s.jokes[len(s.jokes)-1], true
}

func (s *Session) TaskCount() int { return len(s.tasks) }
func (s *Session) NoteCount() int { return len(s.notes) }
func (s *Session) JokeCount() int { return len(s.jokes) }
func (s *Session) TurnCount() int { return len(s.topics) }

func cloneStrings(values []string) []string {
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
