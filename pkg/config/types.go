package config

// Config represents the complete configuration for the giturl tool.
type Config struct {
	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Output controls how parsed URLs are rendered by the CLI
	Output OutputConfig `json:"output" yaml:"output"`

	// Provider selects the default provider layout
	Provider ProviderConfig `json:"provider" yaml:"provider"`

	// GitHub contains GitHub API settings used by the resolve command
	GitHub GitHubConfig `json:"github" yaml:"github"`
}

// LoggingConfig manages logging level, output format, and
// structured logging configuration.
type LoggingConfig struct {
	// Level controls the logging verbosity level.
	// Valid values: debug, info, warn, error
	// Default: info
	Level string `json:"level" yaml:"level"`

	// Format controls the log output format.
	// Valid values: text, json
	// Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose is equivalent to setting Level to "debug".
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet is equivalent to setting Level to "warn".
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// OutputConfig controls rendering of command results.
type OutputConfig struct {
	// Format is one of text, json, yaml.
	Format string `json:"format" yaml:"format"`

	// TrimAuth strips user and token before printing.
	TrimAuth bool `json:"trim_auth" yaml:"trim_auth"`

	// Strict enables the net/url conformance check while parsing.
	// Default: true
	Strict bool `json:"strict" yaml:"strict"`
}

// ProviderConfig selects how repository paths are interpreted.
type ProviderConfig struct {
	// Default is one of generic, gitlab, azure.
	Default string `json:"default" yaml:"default"`
}

// GitHubConfig contains GitHub API integration settings.
type GitHubConfig struct {
	// Token is the GitHub authentication token for API access.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Endpoint is the GitHub Enterprise base URL. Empty means github.com.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// Environment variable mapping constants for configuration parsing
const (
	EnvLogLevel  = "GITURL_LOG_LEVEL"
	EnvLogFormat = "GITURL_LOG_FORMAT"
	EnvVerbose   = "GITURL_VERBOSE"
	EnvQuiet     = "GITURL_QUIET"

	EnvOutput   = "GITURL_OUTPUT"
	EnvTrimAuth = "GITURL_TRIM_AUTH"
	EnvStrict   = "GITURL_STRICT"

	EnvProvider = "GITURL_PROVIDER"

	EnvGitHubToken    = "GITURL_GITHUB_TOKEN"
	EnvGitHubEndpoint = "GITURL_GITHUB_ENDPOINT"
)

// Accepted values for the enumerated settings.
var (
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
	OutputFormats = []string{"text", "json", "yaml"}
	Providers     = []string{"generic", "gitlab", "azure"}
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Strict: true,
		},
		Provider: ProviderConfig{
			Default: "generic",
		},
	}
}
