package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagConfig represents flag parsing configuration and results
type FlagConfig struct {
	ConfigFile string

	// Logging flags
	LogLevel  string
	LogFormat string
	Verbose   bool
	Quiet     bool

	// Output flags
	Output   string
	TrimAuth bool
	NoStrict bool

	// GitHub integration flags
	GitHubToken    string
	GitHubEndpoint string

	logLevelSet  bool
	logFormatSet bool
	verboseSet   bool
	quietSet     bool
	outputSet    bool
	trimAuthSet  bool
	noStrictSet  bool
}

// AddFlags registers the persistent configuration flags on cmd.
func AddFlags(cmd *cobra.Command) *FlagConfig {
	fc := &FlagConfig{}
	flags := cmd.PersistentFlags()

	flags.StringVarP(&fc.ConfigFile, "config", "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/giturl/config.yaml)")

	// Logging control flags
	flags.BoolVarP(&fc.Verbose, "verbose", "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	flags.BoolVarP(&fc.Quiet, "quiet", "q", false,
		"Suppress non-essential output (equivalent to --log-level=warn)")
	flags.StringVar(&fc.LogLevel, "log-level", "",
		"Logging level (debug, info, warn, error)")
	flags.StringVar(&fc.LogFormat, "log-format", "",
		"Log output format (text, json)")

	// Output flags
	flags.StringVarP(&fc.Output, "output", "o", "",
		"Result format (text, json, yaml)")
	flags.BoolVar(&fc.TrimAuth, "trim-auth", false,
		"Remove user and token before printing")
	flags.BoolVar(&fc.NoStrict, "no-strict", false,
		"Skip the net/url conformance check")

	// GitHub integration flags
	flags.StringVar(&fc.GitHubToken, "github-token", "",
		"GitHub authentication token")
	flags.StringVar(&fc.GitHubEndpoint, "github-endpoint", "",
		"GitHub Enterprise base URL")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("verbose", "log-level")
	cmd.MarkFlagsMutuallyExclusive("quiet", "log-level")

	return fc
}

// ValidateFlags validates flag values that were explicitly set.
func (fc *FlagConfig) ValidateFlags() error {
	var issues []string

	if fc.logLevelSet && !slices.Contains(LogLevels, fc.LogLevel) {
		issues = append(issues, fmt.Sprintf("log-level must be one of: %s", strings.Join(LogLevels, ", ")))
	}
	if fc.logFormatSet && !slices.Contains(LogFormats, fc.LogFormat) {
		issues = append(issues, fmt.Sprintf("log-format must be one of: %s", strings.Join(LogFormats, ", ")))
	}
	if fc.outputSet && !slices.Contains(OutputFormats, fc.Output) {
		issues = append(issues, fmt.Sprintf("output must be one of: %s", strings.Join(OutputFormats, ", ")))
	}
	if fc.verboseSet && fc.quietSet && fc.Verbose && fc.Quiet {
		issues = append(issues, "verbose and quiet flags are mutually exclusive")
	}

	if len(issues) > 0 {
		return &FlagError{Issues: issues}
	}
	return nil
}

// Apply overlays the flags that were explicitly set onto cfg.
func (fc *FlagConfig) Apply(cfg *Config) {
	if fc.verboseSet {
		cfg.Logging.Verbose = fc.Verbose
	}
	if fc.quietSet {
		cfg.Logging.Quiet = fc.Quiet
	}
	if fc.logLevelSet && fc.LogLevel != "" {
		cfg.Logging.Level = fc.LogLevel
	}
	if fc.logFormatSet && fc.LogFormat != "" {
		cfg.Logging.Format = fc.LogFormat
	}

	if fc.outputSet && fc.Output != "" {
		cfg.Output.Format = fc.Output
	}
	if fc.trimAuthSet {
		cfg.Output.TrimAuth = fc.TrimAuth
	}
	if fc.noStrictSet {
		cfg.Output.Strict = !fc.NoStrict
	}

	if fc.GitHubToken != "" {
		cfg.GitHub.Token = fc.GitHubToken
	}
	if fc.GitHubEndpoint != "" {
		cfg.GitHub.Endpoint = fc.GitHubEndpoint
	}
}

// ToConfig returns the defaults overlaid with the flags.
func (fc *FlagConfig) ToConfig() (*Config, error) {
	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}
	cfg := New()
	fc.Apply(cfg)
	return cfg, nil
}

// LoadFromFlags loads configuration from command-line flags using cobra.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	return extractFlagConfig(cmd.Flags()).ToConfig()
}

// extractFlagConfig extracts flag values from a flag set into FlagConfig
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed("config") {
		fc.ConfigFile, _ = flags.GetString("config")
	}
	if flags.Changed("verbose") {
		fc.Verbose, _ = flags.GetBool("verbose")
		fc.verboseSet = true
	}
	if flags.Changed("quiet") {
		fc.Quiet, _ = flags.GetBool("quiet")
		fc.quietSet = true
	}
	if flags.Changed("log-level") {
		fc.LogLevel, _ = flags.GetString("log-level")
		fc.logLevelSet = true
	}
	if flags.Changed("log-format") {
		fc.LogFormat, _ = flags.GetString("log-format")
		fc.logFormatSet = true
	}
	if flags.Changed("output") {
		fc.Output, _ = flags.GetString("output")
		fc.outputSet = true
	}
	if flags.Changed("trim-auth") {
		fc.TrimAuth, _ = flags.GetBool("trim-auth")
		fc.trimAuthSet = true
	}
	if flags.Changed("no-strict") {
		fc.NoStrict, _ = flags.GetBool("no-strict")
		fc.noStrictSet = true
	}
	if flags.Changed("github-token") {
		fc.GitHubToken, _ = flags.GetString("github-token")
	}
	if flags.Changed("github-endpoint") {
		fc.GitHubEndpoint, _ = flags.GetString("github-endpoint")
	}

	return fc
}
