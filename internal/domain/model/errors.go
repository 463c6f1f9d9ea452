package model

import "errors"

// Sentinel kinds for record errors.
var (
	// ErrMalformedRecord marks a row that lacks a field the pipeline needs.
	// It is always fatal to a run.
	ErrMalformedRecord = errors.New("malformed record")
)
