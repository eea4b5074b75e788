package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects the configuration for invalid fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	var errs ValidationErrors
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, oneOf("provider.default", cfg.Provider.Default, Providers)...)
	errs = append(errs, validateGitHub(&cfg.GitHub)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, oneOf("logging.level", cfg.Level, LogLevels)...)
	errs = append(errs, oneOf("logging.format", cfg.Format, LogFormats)...)

	if cfg.Verbose && cfg.Quiet {
		errs = append(errs, ValidationError{
			Field:   "logging",
			Value:   "verbose+quiet",
			Message: "verbose and quiet are mutually exclusive",
		})
	}
	return errs
}

func validateOutput(cfg *OutputConfig) ValidationErrors {
	return oneOf("output.format", cfg.Format, OutputFormats)
}

func validateGitHub(cfg *GitHubConfig) ValidationErrors {
	if cfg.Endpoint == "" {
		return nil
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ValidationErrors{{
			Field:   "github.endpoint",
			Value:   cfg.Endpoint,
			Message: "must be an absolute http(s) URL",
		}}
	}
	return nil
}

func oneOf(field, value string, valid []string) ValidationErrors {
	if slices.Contains(valid, value) {
		return nil
	}
	return ValidationErrors{{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
	}}
}
