package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/version"
)

type versionView struct {
	version.Info `yaml:",inline"`
	Check        string `json:"check,omitempty" yaml:"check,omitempty"`
	Outdated     *bool  `json:"outdated,omitempty" yaml:"outdated,omitempty"`
}

func newVersionCommand(a *app) *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print giturl version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVersion(cmd.OutOrStdout(), check)
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "Report whether this build is older than the given version")
	return cmd
}

func (a *app) runVersion(w io.Writer, check string) error {
	view := versionView{Info: version.Get(), Check: check}

	if check != "" {
		older, err := version.Older(view.Version, check)
		if err != nil {
			return newValidationError("cannot compare versions", err)
		}
		view.Outdated = &older
	}

	return a.emit(w, view, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, view.Info.String()); err != nil {
			return err
		}
		if view.Outdated == nil {
			return nil
		}
		if *view.Outdated {
			_, err := fmt.Fprintf(w, "a newer version is available: %s\n", check)
			return err
		}
		_, err := fmt.Fprintf(w, "up to date with %s\n", check)
		return err
	})
}
