package config

import (
	"fmt"
	"strings"
)

// FileError reports a configuration file that could not be read or decoded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config: failed to load %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// EnvError aggregates invalid environment variable values.
type EnvError struct {
	Issues []string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("config: environment variable parsing errors: %s", strings.Join(e.Issues, "; "))
}

// FlagError aggregates invalid flag values.
type FlagError struct {
	Issues []string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("config: flag validation failed:\n  - %s", strings.Join(e.Issues, "\n  - "))
}
