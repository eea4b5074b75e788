package main

import (
	"errors"
	"fmt"

	"github.com/goliatone/giturl/internal/github"
	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/giturl/provider"
	"github.com/goliatone/giturl/pkg/gitutil"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Input validation or parse error
	ExitNetworkError    = 4 // Network/API error
)

// Error types for structured error handling
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

func (e *CLIError) ExitCode() int {
	return e.Code
}

func newConfigError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitConfigError, Message: message, Cause: cause}
}

func newValidationError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitValidationError, Message: message, Cause: cause}
}

func newNetworkError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitNetworkError, Message: message, Cause: cause}
}

// classifyError maps library errors onto exit codes. Errors that are
// already a CLIError pass through.
func classifyError(message string, err error) error {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	var nameErr *gitutil.NameError
	switch {
	case giturl.IsParseError(err),
		provider.IsProviderError(err),
		errors.Is(err, provider.ErrUnknownProvider),
		errors.Is(err, github.ErrUnsupportedHost),
		errors.As(err, &nameErr):
		return newValidationError(message, err)
	case github.IsAPIError(err):
		return newNetworkError(message, err)
	default:
		return &CLIError{Code: ExitGenericError, Message: message, Cause: err}
	}
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode()
	}
	return ExitGenericError
}
