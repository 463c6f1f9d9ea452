package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrOpen              = errors.New("open input failed")
)
