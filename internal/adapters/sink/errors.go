package sink

import "errors"

// ErrWriteOutput is returned when the output document cannot be written.
var ErrWriteOutput = errors.New("sink: write output")
