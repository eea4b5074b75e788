package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/giturl/internal/github"
	"github.com/goliatone/giturl/pkg/gitutil"
)

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Look up a GitHub repository from its clone URL",
		Long: `Resolve queries the GitHub API for the repository a clone URL points at and
prints its canonical clone URLs and default branch. A token is read from
--github-token, GITURL_GITHUB_TOKEN, GITHUB_TOKEN, GH_TOKEN or
GITHUB_ACCESS_TOKEN.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args[0])
		},
	}
}

func (a *app) runResolve(cmd *cobra.Command, raw string) error {
	u, err := a.parse(raw)
	if err != nil {
		return classifyError("failed to parse url", err)
	}

	token := a.cfg.GitHub.Token
	if token == "" {
		token = gitutil.GitHubToken(a.getenv)
	}
	if token == "" {
		return newConfigError("github token required",
			&missingTokenError{vars: gitutil.TokenEnvVars()})
	}

	client, err := github.NewClient(cmd.Context(), token, a.cfg.GitHub.Endpoint, a.httpClient)
	if err != nil {
		return newConfigError("failed to create GitHub client", err)
	}

	resolver := github.NewResolver(client,
		github.WithHost(github.HostForEndpoint(a.cfg.GitHub.Endpoint)),
		github.WithLogger(a.logger),
	)

	repo, err := resolver.Resolve(cmd.Context(), u)
	if err != nil {
		return classifyError("failed to resolve repository", err)
	}

	return a.emit(cmd.OutOrStdout(), repo, func(w io.Writer) error {
		return writeFields(w, []field{
			{"full_name", repo.FullName},
			{"default_branch", repo.DefaultBranch},
			{"clone_url", repo.CloneURL},
			{"ssh_url", repo.SSHURL},
			{"html_url", repo.HTMLURL},
			{"private", strconv.FormatBool(repo.Private)},
			{"archived", strconv.FormatBool(repo.Archived)},
		})
	})
}

type missingTokenError struct {
	vars []string
}

func (e *missingTokenError) Error() string {
	return "set --github-token or one of " + strings.Join(e.vars, ", ")
}
