package catalog

import "errors"

// ErrEmptyCatalog is returned when the store holds no skills.
var ErrEmptyCatalog = errors.New("skill catalog is empty")
