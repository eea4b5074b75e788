package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/gitutil"
)

func newNormalizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <url>",
		Short: "Print the strict URL form of a clone URL",
		Long: `Normalize renders a clone URL in the form a strict URL parser accepts,
for example ssh://git@github.com/owner/repo.git for git@github.com:owner/repo.git.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNormalize(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runNormalize(w io.Writer, raw string) error {
	u, err := a.parse(raw)
	if err != nil {
		return classifyError("failed to parse url", err)
	}

	strict, err := u.ToURL()
	if err != nil {
		return newValidationError("url has no strict form", err)
	}

	view := struct {
		URL string `json:"url" yaml:"url"`
	}{URL: strict.Redacted()}

	return a.emit(w, view, func(w io.Writer) error {
		_, err := io.WriteString(w, view.URL+"\n")
		return err
	})
}

type endpointView struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	User     string `json:"user,omitempty" yaml:"user,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string `json:"path" yaml:"path"`
}

func newEndpointCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint <url>",
		Short: "Print the go-git transport endpoint of a clone URL",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEndpoint(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runEndpoint(w io.Writer, raw string) error {
	u, err := a.parse(raw)
	if err != nil {
		return classifyError("failed to parse url", err)
	}

	ep, err := u.Endpoint()
	if err != nil {
		return newValidationError("failed to build endpoint", err)
	}

	view := endpointView{
		Protocol: ep.Protocol,
		User:     ep.User,
		Host:     ep.Host,
		Port:     ep.Port,
		Path:     ep.Path,
	}
	if ep.Password != "" {
		view.Password = maskedToken
	}

	return a.emit(w, view, func(w io.Writer) error {
		fields := []field{{"protocol", view.Protocol}}
		if view.User != "" {
			fields = append(fields, field{"user", view.User})
		}
		if view.Password != "" {
			fields = append(fields, field{"password", view.Password})
		}
		if view.Host != "" {
			fields = append(fields, field{"host", view.Host})
		}
		if view.Port != 0 {
			fields = append(fields, field{"port", strconv.Itoa(view.Port)})
		}
		fields = append(fields, field{"path", view.Path})
		return writeFields(w, fields)
	})
}

func newModuleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "module <url>",
		Short: "Print the Go module path of a repository",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runModule(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runModule(w io.Writer, raw string) error {
	u, err := a.parse(raw)
	if err != nil {
		return classifyError("failed to parse url", err)
	}

	path, err := gitutil.ModulePath(u)
	if err != nil {
		return newValidationError("failed to derive module path", err)
	}

	view := struct {
		Module string `json:"module" yaml:"module"`
	}{Module: path}

	return a.emit(w, view, func(w io.Writer) error {
		_, err := io.WriteString(w, path+"\n")
		return err
	})
}
