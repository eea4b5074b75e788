package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>...",
		Short: "Print the parts of one or more clone URLs",
		Long: `Parse breaks each clone URL into scheme, user, token, host, port and path
and reports whether it is ssh-like, file-like or http-like. Tokens are
masked in the output.`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runParse(w io.Writer, args []string) error {
	views := make([]urlView, 0, len(args))
	for _, raw := range args {
		u, err := a.parse(raw)
		if err != nil {
			return classifyError("failed to parse url", err)
		}
		views = append(views, newURLView(u))
	}

	var view any = views
	if len(views) == 1 {
		view = views[0]
	}

	return a.emit(w, view, func(w io.Writer) error {
		for i, v := range views {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := writeFields(w, v.fields()); err != nil {
				return err
			}
		}
		return nil
	})
}
