package engine

import "github.com/bnema/companion/internal/domain"

type moodScorer struct {
	positive []keywordMatcher
	negative []keywordMatcher
}

func newMoodScorer(bundle domain.Bundle) *moodScorer {
	s := &moodScorer{}
	// Inherited locales repeat their parent's words.
	seen := map[string]struct{}{}
	add := func(dst []keywordMatcher, words []string, script domain.Script) []keywordMatcher {
		for _, m := range newKeywordMatchers(words, script) {
			if _, dup := seen[m.word]; dup {
				continue
			}
			seen[m.word] = struct{}{}
			dst = append(dst, m)
		}
		return dst
	}

	for _, entry := range bundle.Locales {
		script := entry.EffectiveScript()
		s.positive = add(s.positive, entry.MoodWords.Positive, script)
		s.negative = add(s.negative, entry.MoodWords.Negative, script)
	}
	return s
}

func (s *moodScorer) next(current domain.Mood, utterance string) domain.Mood {
	in := newText(utterance)
	return domain.NextMood(current, total(s.positive, in), total(s.negative, in))
}

func total(matchers []keywordMatcher, in text) int {
	n := 0
	for _, m := range matchers {
		n += m.count(in)
	}
	return n
}
