package giturl

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Parse matches exactly one of the
// parse kinds with errors.Is.
var (
	ErrFoundNullBytes          = errors.New("input contains null bytes")
	ErrInvalidPathEmpty        = errors.New("path is empty")
	ErrInvalidPortNumber       = errors.New("invalid port number")
	ErrInvalidTokenUnsupported = errors.New("token is only supported on http-like urls")
	ErrInvalidFilePattern      = errors.New("file url must not carry user, token, host or port")
	ErrURLParse                = errors.New("url failed strict parse")

	ErrProviderUnsupported = errors.New("provider not supported for this url")
	ErrProviderParse       = errors.New("provider could not parse path")
)

// ParseError is returned by Parse. Input is the string as given, which may
// contain credentials; Error does not print it.
type ParseError struct {
	Input  string
	Kind   error
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "giturl: " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// URLCheckError reports that the compatibility rendering of an otherwise
// valid result was rejected by net/url. Rendered may carry credentials.
type URLCheckError struct {
	Rendered string
	Err      error
}

func (e *URLCheckError) Error() string {
	return fmt.Sprintf("strict check: %v", e.Err)
}

func (e *URLCheckError) Unwrap() error {
	return e.Err
}

var errNotAbsolute = errors.New("url has no scheme")

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsURLCheckError returns true if the error came from the strict check.
func IsURLCheckError(err error) bool {
	var checkErr *URLCheckError
	return errors.As(err, &checkErr)
}

// ErrorKind returns the kind of a ParseError, or nil.
func ErrorKind(err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}
	return nil
}
