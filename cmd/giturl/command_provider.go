package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/pkg/giturl/provider"
)

type providerView struct {
	Provider string           `json:"provider" yaml:"provider"`
	Fullname string           `json:"fullname" yaml:"fullname"`
	Details  provider.Details `json:"details" yaml:"details"`
}

func newProviderCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "provider <url>",
		Short: "Extract hosting provider fields from a clone URL",
		Long: fmt.Sprintf(`Provider reads the repository path of a clone URL using the layout of a
hosting provider. Available kinds: %s. The default comes from the
provider.default setting.`, strings.Join(provider.DefaultRegistry().Names(), ", ")),
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("kind") {
				kind = a.cfg.Provider.Default
			}
			return a.runProvider(cmd.OutOrStdout(), kind, args[0])
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Provider layout (generic, gitlab, azure)")
	return cmd
}

func (a *app) runProvider(w io.Writer, kind, raw string) error {
	u, err := a.parse(raw)
	if err != nil {
		return classifyError("failed to parse url", err)
	}

	details, err := a.registry.Extract(kind, u)
	if err != nil {
		return classifyError("failed to extract provider fields", err)
	}
	a.logger.Debug("provider fields extracted", "provider", kind, "fullname", details.Fullname())

	view := providerView{Provider: kind, Fullname: details.Fullname(), Details: details}
	return a.emit(w, view, func(w io.Writer) error {
		return writeFields(w, []field{
			{"provider", view.Provider},
			{"fullname", view.Fullname},
		})
	})
}
