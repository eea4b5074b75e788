package config

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Builder assembles a Config from defaults, a YAML file, the environment
// and command flags. Sources are applied in call order, so callers should
// go file, env, flags to get the usual precedence. The first error stops
// further overlays and is returned from Build.
type Builder struct {
	cfg    *Config
	getEnv func(string) string
	err    error
}

// NewBuilder starts from New() and reads the process environment.
func NewBuilder() *Builder {
	return NewBuilderWithGetter(os.Getenv)
}

// NewBuilderWithGetter starts from New() with a custom environment getter.
func NewBuilderWithGetter(getter func(string) string) *Builder {
	return &Builder{cfg: New(), getEnv: getter}
}

// FromFile overlays the YAML file at path. An empty path triggers discovery
// of the default location; a missing default file is not an error.
func (b *Builder) FromFile(path string) *Builder {
	if b.err != nil {
		return b
	}

	if path == "" {
		path = DefaultConfigPath(b.getEnv)
		if path == "" {
			return b
		}
		if err := applyFile(b.cfg, path); err != nil && !isNotExist(err) {
			b.err = err
		}
		return b
	}

	b.err = applyFile(b.cfg, path)
	return b
}

// FromEnv overlays GITURL_* variables.
func (b *Builder) FromEnv() *Builder {
	if b.err != nil {
		return b
	}
	b.err = NewEnvParserWithGetter(b.getEnv).Apply(b.cfg)
	return b
}

// FromFlags overlays the flags explicitly set on cmd.
func (b *Builder) FromFlags(cmd *cobra.Command) *Builder {
	if b.err != nil {
		return b
	}
	if cmd == nil {
		b.err = errors.New("command cannot be nil")
		return b
	}

	fc := extractFlagConfig(cmd.Flags())
	if err := fc.ValidateFlags(); err != nil {
		b.err = err
		return b
	}
	fc.Apply(b.cfg)
	return b
}

// Build validates and returns the assembled configuration.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := Validate(b.cfg); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// Load is the CLI entry point: file (from --config or discovery), then
// environment, then flags.
func Load(cmd *cobra.Command) (*Config, error) {
	var path string
	if cmd != nil && cmd.Flags().Changed("config") {
		path, _ = cmd.Flags().GetString("config")
	}
	return NewBuilder().FromFile(path).FromEnv().FromFlags(cmd).Build()
}
