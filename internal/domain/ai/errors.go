package ai

import "errors"

var (
	ErrNotConfigured = errors.New("ai assistant is not configured")
	ErrUpstream      = errors.New("ai upstream request failed")
)
