package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("object not found")

// Info describes a stored object.
type Info struct {
	Key  string
	Size int64
}

// ObjectStore defines the read contract for the sample library.
type ObjectStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns objects under prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Info, error)
}
