package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxKeySegment = 128

// ErrInvalidKeySegment is returned by CleanKeySegment.
var ErrInvalidKeySegment = errors.New("invalid key segment")

// CleanKeySegment trims name and checks that it can be used as one segment of
// an object key: no separators, no traversal, no control characters.
func CleanKeySegment(name string) (string, error) {
	s := strings.TrimSpace(name)
	switch {
	case s == "", len(s) > maxKeySegment:
		return "", ErrInvalidKeySegment
	case strings.Contains(s, ".."), strings.ContainsAny(s, `/\`):
		return "", ErrInvalidKeySegment
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", ErrInvalidKeySegment
		}
	}
	return s, nil
}
