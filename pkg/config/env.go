package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// EnvParser reads configuration from GITURL_* environment variables.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		getEnv: os.Getenv,
	}
}

// NewEnvParserWithGetter creates a parser with a custom getter, mostly for
// tests.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{
		getEnv: getter,
	}
}

// ParseEnv returns the defaults overlaid with the environment.
func (p *EnvParser) ParseEnv() (*Config, error) {
	cfg := New()
	if err := p.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays every set variable onto cfg. All invalid values are
// reported together.
func (p *EnvParser) Apply(cfg *Config) error {
	var issues []string
	issues = append(issues, p.parseLogging(cfg)...)
	issues = append(issues, p.parseOutput(cfg)...)

	if provider := p.getEnv(EnvProvider); provider != "" {
		if !slices.Contains(Providers, provider) {
			issues = append(issues, oneOfIssue(EnvProvider, Providers, provider))
		} else {
			cfg.Provider.Default = provider
		}
	}

	if token := p.getEnv(EnvGitHubToken); token != "" {
		cfg.GitHub.Token = token
	}
	if endpoint := p.getEnv(EnvGitHubEndpoint); endpoint != "" {
		cfg.GitHub.Endpoint = endpoint
	}

	if len(issues) > 0 {
		return &EnvError{Issues: issues}
	}
	return nil
}

func (p *EnvParser) parseLogging(cfg *Config) []string {
	var issues []string

	if level := p.getEnv(EnvLogLevel); level != "" {
		level = strings.ToLower(level)
		if !slices.Contains(LogLevels, level) {
			issues = append(issues, oneOfIssue(EnvLogLevel, LogLevels, level))
		} else {
			cfg.Logging.Level = level
		}
	}

	if format := p.getEnv(EnvLogFormat); format != "" {
		format = strings.ToLower(format)
		if !slices.Contains(LogFormats, format) {
			issues = append(issues, oneOfIssue(EnvLogFormat, LogFormats, format))
		} else {
			cfg.Logging.Format = format
		}
	}

	p.parseBoolVar(EnvVerbose, &cfg.Logging.Verbose, &issues)
	p.parseBoolVar(EnvQuiet, &cfg.Logging.Quiet, &issues)
	return issues
}

func (p *EnvParser) parseOutput(cfg *Config) []string {
	var issues []string

	if format := p.getEnv(EnvOutput); format != "" {
		format = strings.ToLower(format)
		if !slices.Contains(OutputFormats, format) {
			issues = append(issues, oneOfIssue(EnvOutput, OutputFormats, format))
		} else {
			cfg.Output.Format = format
		}
	}

	p.parseBoolVar(EnvTrimAuth, &cfg.Output.TrimAuth, &issues)
	p.parseBoolVar(EnvStrict, &cfg.Output.Strict, &issues)
	return issues
}

func (p *EnvParser) parseBoolVar(name string, dst *bool, issues *[]string) {
	raw := p.getEnv(name)
	if raw == "" {
		return
	}
	value, err := parseBool(raw)
	if err != nil {
		*issues = append(*issues, fmt.Sprintf("invalid %s: %v", name, err))
		return
	}
	*dst = value
}

// parseBool parses a boolean value from a string, supporting multiple formats
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on", "enabled":
		return true, nil
	case "false", "0", "no", "off", "disabled":
		return false, nil
	default:
		return false, fmt.Errorf("must be one of [true, false, 1, 0, yes, no, on, off, enabled, disabled], got %q", value)
	}
}

func oneOfIssue(name string, valid []string, got string) string {
	return fmt.Sprintf("invalid %s: must be one of [%s], got %q", name, strings.Join(valid, ", "), got)
}

// FromEnv is a convenience function that creates a new parser and parses the environment.
func FromEnv() (*Config, error) {
	return NewEnvParser().ParseEnv()
}
