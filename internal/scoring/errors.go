package scoring

import "errors"

var (
	// ErrEmptyInput is returned by Analyze when the text has no words.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset wraps preset validation failures.
	ErrInvalidPreset = errors.New("invalid preset")
)
