// Package provider reads hosting provider conventions out of the path of a
// parsed clone URL.
package provider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/giturl/pkg/giturl"
)

// Extractor derives provider details of type T from a parsed URL.
type Extractor[T any] interface {
	Extract(u *giturl.GitURL) (T, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc[T any] func(u *giturl.GitURL) (T, error)

func (f ExtractorFunc[T]) Extract(u *giturl.GitURL) (T, error) {
	return f(u)
}

// Info runs e against u.
func Info[T any](u *giturl.GitURL, e Extractor[T]) (T, error) {
	if u == nil {
		var zero T
		return zero, &ProviderError{Reason: "nil url", Kind: giturl.ErrProviderParse}
	}
	return e.Extract(u)
}

// Details is the common view of every built-in provider result.
type Details interface {
	Fullname() string
}

// ProviderError is returned by the extractors. Kind is either
// giturl.ErrProviderUnsupported or giturl.ErrProviderParse.
type ProviderError struct {
	Provider string
	Path     string
	Reason   string
	Kind     error
}

func (e *ProviderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("provider: %s: %v: %s", e.Provider, e.Kind, e.Reason)
	}
	return fmt.Sprintf("provider: %s: %v: %s (path %q)", e.Provider, e.Kind, e.Reason, e.Path)
}

func (e *ProviderError) Unwrap() error {
	return e.Kind
}

// IsProviderError returns true if the error is a ProviderError.
func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

func parseFailure(provider, path, reason string) error {
	return &ProviderError{Provider: provider, Path: path, Reason: reason, Kind: giturl.ErrProviderParse}
}

func unsupported(provider, reason string) error {
	return &ProviderError{Provider: provider, Reason: reason, Kind: giturl.ErrProviderUnsupported}
}

// splitPath drops the leading and trailing '/' and splits on the rest.
func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func anyEmpty(parts ...string) bool {
	for _, p := range parts {
		if p == "" {
			return true
		}
	}
	return false
}
