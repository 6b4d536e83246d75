package boardsdk

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response decoded into a Go error.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("driftboard: %s (%d): %s", e.Code, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("driftboard: %s (%d)", e.Code, e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
