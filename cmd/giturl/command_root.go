package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/config"
	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/giturl/provider"
	"github.com/goliatone/giturl/pkg/logging"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	getenv     func(string) string
	httpClient *http.Client

	cfg      *config.Config
	logger   logging.Logger
	parser   *giturl.Parser
	registry *provider.Registry
}

func newApp(getenv func(string) string) *app {
	return &app{
		getenv:   getenv,
		cfg:      config.New(),
		logger:   logging.Nop(),
		parser:   giturl.NewParser(),
		registry: provider.DefaultRegistry(),
	}
}

// newRootCommand creates the root cobra command with all subcommands
func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "giturl",
		Short: "Parse and inspect git clone URLs",
		Long: `giturl parses the URLs accepted by "git clone" (scp-like ssh, ssh://,
http(s)://, git://, file:// and local paths) and reports their parts,
hosting provider layout, strict URL form, go-git endpoint and Go module path.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GITURL_*)
  3. Configuration file ($XDG_CONFIG_HOME/giturl/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0  - Success
  1  - Generic error
  2  - Configuration error
  3  - Validation error (unparseable URL, wrong provider layout, bad arguments)
  4  - Network error (GitHub API failures)

Examples:
  giturl parse git@github.com:goliatone/giturl.git
  giturl provider --kind gitlab https://gitlab.com/group/sub/project.git
  giturl -o json endpoint ssh://git@example.com:2222/team/tool.git`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	// Override Cobra's default error handling to use structured errors
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newValidationError("invalid flag usage", err)
	})

	config.AddFlags(cmd)

	cmd.AddCommand(
		newParseCommand(a),
		newProviderCommand(a),
		newNormalizeCommand(a),
		newEndpointCommand(a),
		newModuleCommand(a),
		newResolveCommand(a),
		newRemotesCommand(a),
		newVersionCommand(a),
	)

	return cmd
}

// initialize builds the configuration, logger and parser for this run.
func (a *app) initialize(cmd *cobra.Command) error {
	var configFile string
	if cmd.Flags().Changed("config") {
		configFile, _ = cmd.Flags().GetString("config")
	}

	cfg, err := config.NewBuilderWithGetter(a.getenv).
		FromFile(configFile). // Use explicit config file or auto-discover
		FromEnv().            // Load from environment
		FromFlags(cmd).       // Load from command flags (highest precedence)
		Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	a.parser = giturl.NewParser(
		giturl.WithLogger(a.logger),
		giturl.WithStrictCheck(cfg.Output.Strict),
	)

	a.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"output", cfg.Output.Format,
		"strict", cfg.Output.Strict,
		"provider", cfg.Provider.Default,
	)
	return nil
}

// parse parses raw with the configured parser and applies --trim-auth.
func (a *app) parse(raw string) (*giturl.GitURL, error) {
	u, err := a.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	if a.cfg.Output.TrimAuth {
		u = u.TrimAuth()
	}
	return u, nil
}

// exactArgs wraps cobra.ExactArgs so argument errors exit as validation errors.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func minimumArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MinimumNArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return newValidationError("invalid arguments", err)
		}
		return nil
	}
}
