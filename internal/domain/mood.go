package domain

type Mood string

const (
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
)

var Moods = []Mood{MoodNeutral, MoodHappy, MoodSad}

func (m Mood) Valid() bool {
	return m == MoodNeutral || m == MoodHappy || m == MoodSad
}

func NextMood(current Mood, positive, negative int) Mood {
	switch {
	case positive > negative:
		return MoodHappy
	case negative > positive:
		return MoodSad
	default:
		return current
	}
}
