package models

import (
	"context"
	"errors"
)

// ErrorKind classifies why an adapter degraded to fallback output.
type ErrorKind string

const (
	ErrorKindNone         ErrorKind = ""
	ErrorKindCollaborator ErrorKind = "collaborator_error"
	ErrorKindTimeout      ErrorKind = "timeout"
	ErrorKindMalformed    ErrorKind = "malformed_response"
	ErrorKindUnavailable  ErrorKind = "unavailable"
)

// Result carries an adapter's output and whether it is genuine or degraded.
// Consumers that only need the payload read Value; Fallback and Reason let callers
// distinguish a real success from a placeholder without intercepting errors.
type Result[T any] struct {
	Value    T
	Fallback bool
	Reason   ErrorKind
	Err      error
}

// OK wraps a genuine success.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Degraded wraps fallback output together with the reason it was needed.
func Degraded[T any](v T, reason ErrorKind, err error) Result[T] {
	return Result[T]{Value: v, Fallback: true, Reason: reason, Err: err}
}

// ClassifyError maps a collaborator error to an ErrorKind.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorKindTimeout
	default:
		return ErrorKindCollaborator
	}
}
