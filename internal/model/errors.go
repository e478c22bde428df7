package model

import "errors"

var (
	ErrUnauthorized     = errors.New("caller does not own the conversation")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrCompletionFailed = errors.New("completion failed")
	ErrStoreFailure     = errors.New("store failure")
)
