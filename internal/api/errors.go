package api

import (
	"fmt"
	"net/http"

	"github.com/jdisla/medioambiente-cli/internal/common"
)

// Error is an API-reported failure: the server answered with a non-success
// status. Message carries the API's own `error` field when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// Unauthorized reports whether the API rejected the bearer credential.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Unwrap lets errors.Is match a 401 against common.ErrUnauthorized.
func (e *Error) Unwrap() error {
	if e.Unauthorized() {
		return common.ErrUnauthorized
	}
	return nil
}
