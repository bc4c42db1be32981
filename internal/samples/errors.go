package samples

import "errors"

var (
	ErrNotFound    = errors.New("sample not found")
	ErrInvalidID   = errors.New("invalid sample id")
	ErrUnknownKind = errors.New("unknown sample kind")
)
