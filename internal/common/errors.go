// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnavailable means the remote API could not be reached or returned
	// a body the client could not decode. It is a transport-level failure,
	// distinct from the API rejecting a request.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the API rejected the bearer credential
	// (typically a 401 on an authenticated resource).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoSession is returned by operations that require a logged-in user
	// while the session is anonymous.
	ErrNoSession = errors.New("no active session")
)
