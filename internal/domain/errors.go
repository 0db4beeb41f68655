package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrDuplicateJob    = errors.New("duplicate job")
	ErrQueueFull       = errors.New("job queue full")
	ErrProviderFailure = errors.New("provider failure")
	ErrStageTimeout    = errors.New("stage deadline exceeded")
)
