package entity

import "errors"

// Standard domain errors
var (
	ErrInferenceUnavailable = errors.New("remote inference is not configured")
	ErrEmptyCompletion      = errors.New("inference provider returned no content")
	ErrUnknownProvider      = errors.New("unknown inference provider")
)
