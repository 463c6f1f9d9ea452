package service

import "errors"

// Sentinel errors returned by Run.
var (
	ErrNoSource = errors.New("service: no source configured")
	ErrNoSink   = errors.New("service: no sink configured")
)
