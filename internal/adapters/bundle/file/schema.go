package file

import (
	"fmt"

	"github.com/bnema/companion/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version" yaml:"version"`
	Locales []localeSchema `toml:"locales" yaml:"locales"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported bundle schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type localeSchema struct {
	Locale    string              `toml:"locale" yaml:"locale"`
	Name      string              `toml:"name,omitempty" yaml:"name,omitempty"`
	Inherit   string              `toml:"inherit,omitempty" yaml:"inherit,omitempty"`
	Script    string              `toml:"script,omitempty" yaml:"script,omitempty"`
	Names     []string            `toml:"names,omitempty" yaml:"names,omitempty"`
	Keywords  []string            `toml:"keywords,omitempty" yaml:"keywords,omitempty"`
	Jokes     []string            `toml:"jokes,omitempty" yaml:"jokes,omitempty"`
	Patterns  map[string][]string `toml:"patterns,omitempty" yaml:"patterns,omitempty"`
	Extract   map[string][]string `toml:"extract,omitempty" yaml:"extract,omitempty"`
	Responses map[string][]string `toml:"responses,omitempty" yaml:"responses,omitempty"`
	Dayparts  daypartsSchema      `toml:"dayparts,omitempty" yaml:"dayparts,omitempty"`
	Mood      moodSchema          `toml:"mood,omitempty" yaml:"mood,omitempty"`
}

type daypartsSchema struct {
	Morning   string `toml:"morning" yaml:"morning"`
	Afternoon string `toml:"afternoon" yaml:"afternoon"`
	Evening   string `toml:"evening" yaml:"evening"`
	Night     string `toml:"night" yaml:"night"`
}

type moodSchema struct {
	Positive []string            `toml:"positive,omitempty" yaml:"positive,omitempty"`
	Negative []string            `toml:"negative,omitempty" yaml:"negative,omitempty"`
	Phrases  map[string][]string `toml:"phrases,omitempty" yaml:"phrases,omitempty"`
}

func fromSchema(s localeSchema) domain.LocaleBundle {
	return domain.LocaleBundle{
		Locale:    domain.Locale(s.Locale),
		Name:      s.Name,
		Inherit:   domain.Locale(s.Inherit),
		Script:    domain.Script(s.Script),
		Names:     s.Names,
		Keywords:  s.Keywords,
		Jokes:     s.Jokes,
		Patterns:  convertKeys[domain.Intent](s.Patterns),
		Extract:   convertKeys[domain.Intent](s.Extract),
		Responses: convertKeys[domain.Category](s.Responses),
		Dayparts: domain.Dayparts{
			Morning:   s.Dayparts.Morning,
			Afternoon: s.Dayparts.Afternoon,
			Evening:   s.Dayparts.Evening,
			Night:     s.Dayparts.Night,
		},
		MoodWords: domain.MoodWords{
			Positive: s.Mood.Positive,
			Negative: s.Mood.Negative,
		},
		MoodPhrases: convertKeys[domain.Mood](s.Mood.Phrases),
	}
}

func toSchema(b domain.LocaleBundle) localeSchema {
	return localeSchema{
		Locale:    string(b.Locale),
		Name:      b.Name,
		Inherit:   string(b.Inherit),
		Script:    string(b.Script),
		Names:     b.Names,
		Keywords:  b.Keywords,
		Jokes:     b.Jokes,
		Patterns:  convertKeys[string](b.Patterns),
		Extract:   convertKeys[string](b.Extract),
		Responses: convertKeys[string](b.Responses),
		Dayparts: daypartsSchema{
			Morning:   b.Dayparts.Morning,
			Afternoon: b.Dayparts.Afternoon,
			Evening:   b.Dayparts.Evening,
			Night:     b.Dayparts.Night,
		},
		Mood: moodSchema{
			Positive: b.MoodWords.Positive,
			Negative: b.MoodWords.Negative,
			Phrases:  convertKeys[string](b.MoodPhrases),
		},
	}
}

func convertKeys[To ~string, From ~string](in map[From][]string) map[To][]string {
	if in == nil {
		return nil
	}

	out := make(map[To][]string, len(in))
	for key, values := range in {
		out[To(key)] = values
	}
	return out
}
