package engine

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/bnema/companion/internal/domain"
)

type Classifier struct {
	rules []intentRule
}

type intentRule struct {
	intent   domain.Intent
	patterns []localePattern
}

type localePattern struct {
	folds bool
	re    *regexp.Regexp
}

func NewClassifier(bundle domain.Bundle) (*Classifier, error) {
	c := &Classifier{}
	var errs []error

	for _, intent := range domain.IntentOrder {
		if intent == domain.IntentSmallTalk {
			continue
		}

		rule := intentRule{intent: intent}
		seen := map[string]struct{}{}
		for _, entry := range bundle.Locales {
			folds := entry.EffectiveScript().Folds()
			for _, raw := range entry.Patterns[intent] {
				key := fmt.Sprintf("%t|%s", folds, raw)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				re, err := regexp.Compile(raw)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %s pattern %q: %w", entry.Locale, intent, raw, err))
					continue
				}
				rule.patterns = append(rule.patterns, localePattern{folds: folds, re: re})
			}
		}
		c.rules = append(c.rules, rule)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidBundle, errors.Join(errs...))
	}

	return c, nil
}

func (c *Classifier) Classify(utterance string) domain.Intent {
	in := newText(utterance)
	for _, rule := range c.rules {
		for _, p := range rule.patterns {
			if p.re.MatchString(in.forScript(p.folds)) {
				return rule.intent
			}
		}
	}
	return domain.IntentSmallTalk
}
