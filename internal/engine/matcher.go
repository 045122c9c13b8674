package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bnema/companion/internal/domain"
)

type keywordMatcher struct {
	word  string
	runes int
	re    *regexp.Regexp
}

func newKeywordMatcher(word string, script domain.Script) (keywordMatcher, bool) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return keywordMatcher{}, false
	}

	m := keywordMatcher{word: trimmed, runes: utf8.RuneCountInString(trimmed)}
	if script.Folds() {
		m.word = strings.ToLower(trimmed)
		m.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(m.word) + `\b`)
	}
	return m, true
}

func (m keywordMatcher) count(in text) int {
	if m.re != nil {
		return len(m.re.FindAllStringIndex(in.folded, -1))
	}
	return strings.Count(in.raw, m.word)
}

func newKeywordMatchers(words []string, script domain.Script) []keywordMatcher {
	matchers := make([]keywordMatcher, 0, len(words))
	for _, word := range words {
		if m, ok := newKeywordMatcher(word, script); ok {
			matchers = append(matchers, m)
		}
	}
	return matchers
}

type text struct {
	raw    string
	folded string
}

func newText(utterance string) text {
	return text{raw: utterance, folded: strings.ToLower(utterance)}
}

func (t text) forScript(folds bool) string {
	if folds {
		return t.folded
	}
	return t.raw
}
