package github

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedHost is returned for URLs that do not point at the
	// configured GitHub host.
	ErrUnsupportedHost = errors.New("github: unsupported host")

	// ErrNotFound is returned when the API answers 404.
	ErrNotFound = errors.New("github: repository not found")
)

// APIError wraps a failed GitHub API call.
type APIError struct {
	Operation  string
	Repo       string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %s %s failed (status %d): %v", e.Operation, e.Repo, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("github: %s %s failed: %v", e.Operation, e.Repo, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsAPIError returns true if the error is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
