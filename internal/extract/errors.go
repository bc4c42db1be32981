package extract

import "errors"

var (
	// ErrDecode means the bytes are not valid text in the declared encoding.
	ErrDecode = errors.New("decode error")
	// ErrUnsupportedFormat means the format is not one we can read.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrExtractionFailure means the format is known but the content could not
	// be read, e.g. a corrupt or image-only PDF.
	ErrExtractionFailure = errors.New("extraction failure")
)
