package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryGreeting        Category = "greeting"
	CategoryTaskAck         Category = "task_ack"
	CategoryNoteAck         Category = "note_ack"
	CategoryJokeSetup       Category = "joke_setup"
	CategoryLanguageSwitch  Category = "language_switch"
	CategoryLanguageUnknown Category = "language_unknown"
	CategoryTasksList       Category = "tasks_list"
	CategoryTasksEmpty      Category = "tasks_empty"
	CategoryNotesList       Category = "notes_list"
	CategoryNotesEmpty      Category = "notes_empty"
	CategoryJokesList       Category = "jokes_list"
	CategoryJokesEmpty      Category = "jokes_empty"
	CategoryTopicsList      Category = "topics_list"
	CategoryTopicsEmpty     Category = "topics_empty"
	CategoryHelp            Category = "help"
	CategorySmallTalk       Category = "small_talk"
	CategoryEmpty           Category = "empty"
)

var Categories = []Category{
	CategoryGreeting,
	CategoryTaskAck,
	CategoryNoteAck,
	CategoryJokeSetup,
	CategoryLanguageSwitch,
	CategoryLanguageUnknown,
	CategoryTasksList,
	CategoryTasksEmpty,
	CategoryNotesList,
	CategoryNotesEmpty,
	CategoryJokesList,
	CategoryJokesEmpty,
	CategoryTopicsList,
	CategoryTopicsEmpty,
	CategoryHelp,
	CategorySmallTalk,
	CategoryEmpty,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Dayparts struct {
	Morning   string
	Afternoon string
	Evening   string
	Night     string
}

func (d Dayparts) At(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return d.Morning
	case hour >= 12 && hour < 17:
		return d.Afternoon
	case hour >= 17 && hour < 22:
		return d.Evening
	default:
		return d.Night
	}
}

func (d Dayparts) merge(top Dayparts) Dayparts {
	if top.Morning != "" {
		d.Morning = top.Morning
	}
	if top.Afternoon != "" {
		d.Afternoon = top.Afternoon
	}
	if top.Evening != "" {
		d.Evening = top.Evening
	}
	if top.Night != "" {
		d.Night = top.Night
	}
	return d
}

type MoodWords struct {
	Positive []string
	Negative []string
}

type LocaleBundle struct {
	Locale      Locale
	Name        string
	Inherit     Locale
	Script      Script
	Names       []string
	Keywords    []string
	Patterns    map[Intent][]string
	Extract     map[Intent][]string
	Responses   map[Category][]string
	Jokes       []string
	Dayparts    Dayparts
	MoodWords   MoodWords
	MoodPhrases map[Mood][]string
}

func (b LocaleBundle) DisplayName() string {
	if strings.TrimSpace(b.Name) != "" {
		return b.Name
	}
	return string(b.Locale)
}

func (b LocaleBundle) EffectiveScript() Script {
	if b.Script != "" {
		return b.Script
	}
	return b.Locale.Script()
}

type Bundle struct {
	Locales []LocaleBundle
}

func (b Bundle) Lookup(locale Locale) (LocaleBundle, bool) {
	for _, entry := range b.Locales {
		if entry.Locale == locale {
			return entry, true
		}
	}
	return LocaleBundle{}, false
}

func (b Bundle) Resolve(locale Locale) LocaleBundle {
	if entry, ok := b.Lookup(locale); ok {
		return entry
	}
	if entry, ok := b.Lookup(DefaultLocale); ok {
		return entry
	}
	return LocaleBundle{Locale: DefaultLocale}
}

func (b *Bundle) Overlay(other Bundle) {
	for _, incoming := range other.Locales {
		replaced := false
		for i := range b.Locales {
			if b.Locales[i].Locale == incoming.Locale {
				b.Locales[i] = overlayLocale(b.Locales[i], incoming)
				replaced = true
				break
			}
		}
		if !replaced {
			b.Locales = append(b.Locales, incoming)
		}
	}
}

func (b Bundle) ResolveInheritance() (Bundle, error) {
	resolved := make(map[Locale]LocaleBundle, len(b.Locales))
	var resolve func(locale Locale, chain []Locale) (LocaleBundle, error)
	resolve = func(locale Locale, chain []Locale) (LocaleBundle, error) {
		if done, ok := resolved[locale]; ok {
			return done, nil
		}
		for _, seen := range chain {
			if seen == locale {
				return LocaleBundle{}, fmt.Errorf("%w: inheritance cycle through %s", ErrInvalidBundle, locale)
			}
		}

		entry, ok := b.Lookup(locale)
		if !ok {
			return LocaleBundle{}, fmt.Errorf("%w: %s inherits unknown locale", ErrInvalidBundle, chain[len(chain)-1])
		}
		if entry.Inherit != "" {
			parent, err := resolve(entry.Inherit, append(chain, locale))
			if err != nil {
				return LocaleBundle{}, err
			}
			entry = overlayLocale(parent, entry)
			entry.Inherit = parent.Locale
		}

		resolved[locale] = entry
		return entry, nil
	}

	out := Bundle{Locales: make([]LocaleBundle, 0, len(b.Locales))}
	for _, entry := range b.Locales {
		done, err := resolve(entry.Locale, nil)
		if err != nil {
			return Bundle{}, err
		}
		out.Locales = append(out.Locales, done)
	}

	return out, nil
}

func (b Bundle) Validate() error {
	var errs []error

	if _, ok := b.Lookup(DefaultLocale); !ok {
		errs = append(errs, fmt.Errorf("default locale %s is missing", DefaultLocale))
	}

	seen := make(map[Locale]struct{}, len(b.Locales))
	for _, entry := range b.Locales {
		if !entry.Locale.Supported() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedLocale, entry.Locale))
			continue
		}
		if _, dup := seen[entry.Locale]; dup {
			errs = append(errs, fmt.Errorf("locale %s is defined twice", entry.Locale))
		}
		seen[entry.Locale] = struct{}{}

		if entry.Inherit != "" && !entry.Inherit.Supported() {
			errs = append(errs, fmt.Errorf("%s: inherits %w: %q", entry.Locale, ErrUnsupportedLocale, entry.Inherit))
		}
		switch entry.Script {
		case "", ScriptLatin, ScriptTamil:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown script %q", entry.Locale, entry.Script))
		}
		for intent := range entry.Patterns {
			if !intent.Valid() {
				errs = append(errs, fmt.Errorf("%s: patterns: %w: %q", entry.Locale, ErrUnknownIntent, intent))
			}
		}
		for intent := range entry.Extract {
			if !intent.Extracts() {
				errs = append(errs, fmt.Errorf("%s: extract: intent %q carries no payload", entry.Locale, intent))
			}
		}
		for category := range entry.Responses {
			if !category.Valid() {
				errs = append(errs, fmt.Errorf("%s: unknown response category %q", entry.Locale, category))
			}
		}
		for mood := range entry.MoodPhrases {
			if !mood.Valid() {
				errs = append(errs, fmt.Errorf("%s: unknown mood %q", entry.Locale, mood))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidBundle, errors.Join(errs...))
}

func overlayLocale(base, top LocaleBundle) LocaleBundle {
	out := base
	out.Locale = top.Locale
	if top.Name != "" {
		out.Name = top.Name
	}
	if top.Inherit != "" {
		out.Inherit = top.Inherit
	}
	if top.Script != "" {
		out.Script = top.Script
	}
	if len(top.Names) > 0 {
		out.Names = top.Names
	}
	if len(top.Keywords) > 0 {
		out.Keywords = top.Keywords
	}
	if len(top.Jokes) > 0 {
		out.Jokes = top.Jokes
	}
	out.Dayparts = base.Dayparts.merge(top.Dayparts)
	if len(top.MoodWords.Positive) > 0 {
		out.MoodWords.Positive = top.MoodWords.Positive
	}
	if len(top.MoodWords.Negative) > 0 {
		out.MoodWords.Negative = top.MoodWords.Negative
	}
	out.Patterns = mergeTable(base.Patterns, top.Patterns)
	out.Extract = mergeTable(base.Extract, top.Extract)
	out.Responses = mergeTable(base.Responses, top.Responses)
	out.MoodPhrases = mergeTable(base.MoodPhrases, top.MoodPhrases)

	return out
}

func mergeTable[K comparable](base, top map[K][]string) map[K][]string {
	if len(base) == 0 && len(top) == 0 {
		return nil
	}

	merged := make(map[K][]string, len(base)+len(top))
	for key, values := range base {
		merged[key] = values
	}
	for key, values := range top {
		merged[key] = values
	}
	return merged
}
