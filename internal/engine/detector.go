package engine

import "github.com/bnema/companion/internal/domain"

type Detector struct {
	locales []localeKeywords
}

type localeKeywords struct {
	locale   domain.Locale
	keywords []keywordMatcher
}

func NewDetector(bundle domain.Bundle) *Detector {
	d := &Detector{locales: make([]localeKeywords, 0, len(bundle.Locales))}
	for _, entry := range bundle.Locales {
		d.locales = append(d.locales, localeKeywords{
			locale:   entry.Locale,
			keywords: newKeywordMatchers(entry.Keywords, entry.EffectiveScript()),
		})
	}
	return d
}

// Any tie, including no hits at all, keeps current.
func (d *Detector) Detect(utterance string, current domain.Locale) domain.Locale {
	if !current.Supported() {
		current = domain.DefaultLocale
	}

	in := newText(utterance)
	best, bestScore, tied := current, 0, false
	for _, l := range d.locales {
		score := total(l.keywords, in)
		switch {
		case score > bestScore:
			best, bestScore, tied = l.locale, score, false
		case score > 0 && score == bestScore:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return current
	}
	return best
}
