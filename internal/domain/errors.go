package domain

import "errors"

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrUnknownIntent     = errors.New("unknown intent")
	ErrInvalidBundle     = errors.New("invalid locale bundle")
)
