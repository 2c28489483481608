package model

import (
	"errors"
	"fmt"
)

// ErrChannelClosed is returned by the transport when a send is attempted
// while the connection is down.
var ErrChannelClosed = errors.New("channel closed")

// ValidationError rejects an operation before any local state is touched,
// so no rollback is ever needed for it.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ServerError is a non-2xx platform response, carrying the human-readable
// message extracted from the response envelope.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError means the platform or the channel was unreachable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsServer(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
