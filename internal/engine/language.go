package engine

import (
	"strings"

	"github.com/bnema/companion/internal/domain"
)

type LanguageResolver struct {
	names []localeName
}

type localeName struct {
	locale  domain.Locale
	matcher keywordMatcher
}

func NewLanguageResolver(bundle domain.Bundle) *LanguageResolver {
	r := &LanguageResolver{}
	for _, entry := range bundle.Locales {
		for _, name := range entry.Names {
			m, ok := newKeywordMatcher(name, scriptOf(name))
			if !ok {
				continue
			}
			r.names = append(r.names, localeName{locale: entry.Locale, matcher: m})
		}
	}
	return r
}

func (r *LanguageResolver) Resolve(utterance string) (domain.Locale, bool) {
	in := newText(utterance)
	var (
		best    domain.Locale
		bestLen int
	)
	for _, n := range r.names {
		if n.matcher.runes <= bestLen {
			continue
		}
		if n.matcher.count(in) > 0 {
			best, bestLen = n.locale, n.matcher.runes
		}
	}
	return best, bestLen > 0
}

func scriptOf(word string) domain.Script {
	for _, r := range word {
		if r > 0x024F && !strings.ContainsRune("'’", r) {
			return domain.ScriptTamil
		}
	}
	return domain.ScriptLatin
}
