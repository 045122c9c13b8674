package domain

import (
	"fmt"
	"strings"
)

type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleEnGB Locale = "en-GB"
	LocaleTaIN Locale = "ta-IN"
	LocaleTaLK Locale = "ta-LK"

	DefaultLocale = LocaleEnUS
)

var SupportedLocales = []Locale{LocaleEnUS, LocaleEnGB, LocaleTaIN, LocaleTaLK}

type Script string

const (
	ScriptLatin Script = "latin"
	ScriptTamil Script = "tamil"
)

func (s Script) Folds() bool {
	return s == ScriptLatin || s == ""
}

func (l Locale) Supported() bool {
	for _, supported := range SupportedLocales {
		if l == supported {
			return true
		}
	}
	return false
}

func (l Locale) Script() Script {
	switch l {
	case LocaleTaIN, LocaleTaLK:
		return ScriptTamil
	default:
		return ScriptLatin
	}
}

func ParseLocale(raw string) (Locale, error) {
	trimmed := strings.TrimSpace(raw)
	for _, supported := range SupportedLocales {
		if strings.EqualFold(trimmed, string(supported)) {
			return supported, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
}
