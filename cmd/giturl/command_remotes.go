package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/internal/remotes"
)

type remoteView struct {
	Name string          `json:"name" yaml:"name"`
	URLs []remoteURLView `json:"urls" yaml:"urls"`
}

// remoteURLView holds either the parsed URL or the parse error.
type remoteURLView struct {
	Parsed *urlView `json:"parsed,omitempty" yaml:"parsed,omitempty"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func newRemotesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remotes [path]",
		Short: "Parse the remote URLs of a local repository",
		Long: `Remotes opens the git repository containing path (default: the current
directory) and parses the URL of every configured remote.`,
		Args: wrapArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return a.runRemotes(cmd.OutOrStdout(), path)
		},
	}
}

func (a *app) runRemotes(w io.Writer, path string) error {
	list, err := remotes.List(path, a.parser)
	if err != nil {
		if errors.Is(err, remotes.ErrNotRepository) {
			return newValidationError("no repository found", err)
		}
		return classifyError("failed to read remotes", err)
	}

	views := make([]remoteView, 0, len(list))
	for _, r := range list {
		view := remoteView{Name: r.Name}
		for _, entry := range r.URLs {
			view.URLs = append(view.URLs, newRemoteURLView(entry, a.cfg.Output.TrimAuth))
		}
		views = append(views, view)
		a.logger.Debug("remote parsed", "remote", r.Name, "urls", len(r.URLs))
	}

	return a.emit(w, views, func(w io.Writer) error {
		var fields []field
		for _, v := range views {
			for _, u := range v.URLs {
				value := "error: " + u.Error
				if u.Parsed != nil {
					value = u.Parsed.URL + " (" + u.Parsed.Hint + ")"
				}
				fields = append(fields, field{v.Name, value})
			}
		}
		return writeFields(w, fields)
	})
}

func newRemoteURLView(entry remotes.Entry, trimAuth bool) remoteURLView {
	if entry.Err != nil {
		return remoteURLView{Error: entry.Err.Error()}
	}
	u := entry.URL
	if trimAuth {
		u = u.TrimAuth()
	}
	view := newURLView(u)
	return remoteURLView{Parsed: &view}
}
