package analyses

import "errors"

var (
	// ErrAmbiguousInput means both inline text and a sample id were supplied
	// for the same document.
	ErrAmbiguousInput = errors.New("inline text and sample id are mutually exclusive")
	// ErrUnknownStrategy is returned for an unrecognized match strategy.
	ErrUnknownStrategy = errors.New("unknown match strategy")
)

const (
	ErrorCodeValidation       = "validation_error"
	ErrorCodeUnknownPreset    = "unknown_preset"
	ErrorCodeDecode           = "decode_error"
	ErrorCodeExtractionFailed = "extraction_failed"
	ErrorCodeNotFound         = "not_found"
	ErrorCodePayloadTooLarge  = "payload_too_large"
	ErrorCodeInternal         = "internal_error"
)

// Reasons reported on an empty result.
const (
	ReasonEmptyInput        = "empty_input"
	ReasonUnsupportedFormat = "unsupported_format"
)
