package transport

import (
	"errors"
	"fmt"
)

// ErrAuthExpired signals that the remote rejected the session credential.
// By the time a caller sees it the credential has already been cleared and
// the redirect hook fired.
var ErrAuthExpired = errors.New("session expired or invalid")

// RequestError is any non-2xx response other than an auth rejection. The
// credential is left untouched; callers handle it locally.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}

// NetworkError wraps a transport-level failure that happened before any
// response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network unavailable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
