package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/companion/internal/domain"
)

type Extractor struct {
	patterns map[domain.Intent][]*regexp.Regexp
}

func NewExtractor(bundle domain.Bundle) (*Extractor, error) {
	e := &Extractor{patterns: map[domain.Intent][]*regexp.Regexp{}}
	var errs []error

	for _, intent := range domain.IntentOrder {
		if !intent.Extracts() {
			continue
		}

		seen := map[string]struct{}{}
		for _, entry := range bundle.Locales {
			for _, raw := range entry.Extract[intent] {
				expr := raw
				if entry.EffectiveScript().Folds() {
					expr = "(?i)" + raw
				}
				if _, dup := seen[expr]; dup {
					continue
				}
				seen[expr] = struct{}{}

				re, err := regexp.Compile(expr)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %s capture %q: %w", entry.Locale, intent, raw, err))
					continue
				}
				if re.NumSubexp() != 1 {
					errs = append(errs, fmt.Errorf("%s: %s capture %q: want exactly one group, got %d", entry.Locale, intent, raw, re.NumSubexp()))
					continue
				}
				e.patterns[intent] = append(e.patterns[intent], re)
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidBundle, errors.Join(errs...))
	}

	return e, nil
}

func (e *Extractor) Extract(intent domain.Intent, utterance string) string {
	if !intent.Extracts() {
		return utterance
	}

	for _, re := range e.patterns[intent] {
		match := re.FindStringSubmatch(utterance)
		if match == nil {
			continue
		}
		if captured := strings.TrimSpace(match[1]); captured != "" {
			return captured
		}
	}

	return utterance
}
