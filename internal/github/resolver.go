// Package github looks up repositories named by clone URLs through the
// GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/giturl/provider"
	"github.com/goliatone/giturl/pkg/gitutil"
	"github.com/goliatone/giturl/pkg/logging"
)

// Repository is the subset of repository metadata the CLI reports.
type Repository struct {
	FullName      string `json:"full_name" yaml:"full_name"`
	Owner         string `json:"owner" yaml:"owner"`
	Name          string `json:"name" yaml:"name"`
	DefaultBranch string `json:"default_branch" yaml:"default_branch"`
	CloneURL      string `json:"clone_url" yaml:"clone_url"`
	SSHURL        string `json:"ssh_url" yaml:"ssh_url"`
	HTMLURL       string `json:"html_url" yaml:"html_url"`
	Private       bool   `json:"private" yaml:"private"`
	Archived      bool   `json:"archived" yaml:"archived"`
}

// Resolver maps parsed clone URLs to repositories.
type Resolver struct {
	client *gh.Client
	hosts  []string
	logger logging.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHost sets the git host the resolver accepts. For github.com the
// ssh.github.com alias is accepted too.
func WithHost(host string) Option {
	return func(r *Resolver) {
		host = strings.ToLower(strings.TrimSpace(host))
		if host == "" {
			return
		}
		r.hosts = []string{host}
		if host == DefaultHost {
			r.hosts = append(r.hosts, "ssh."+DefaultHost)
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver for github.com unless WithHost says
// otherwise.
func NewResolver(client *gh.Client, opts ...Option) *Resolver {
	r := &Resolver{
		client: client,
		logger: logging.Nop(),
	}
	WithHost(DefaultHost)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the repository u points at.
func (r *Resolver) Resolve(ctx context.Context, u *giturl.GitURL) (*Repository, error) {
	if u == nil {
		return nil, fmt.Errorf("github: nil url")
	}

	host, _ := u.Host()
	if !r.accepts(host) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHost, host)
	}

	g, err := provider.ParseGeneric(u)
	if err != nil {
		return nil, err
	}
	if err := gitutil.ValidateOwnerName(g.Owner); err != nil {
		return nil, err
	}
	if err := gitutil.ValidateRepoName(g.Repo); err != nil {
		return nil, err
	}

	r.logger.Debug("github: fetching repository", "repo", g.Fullname())

	repo, resp, err := r.client.Repositories.Get(ctx, g.Owner, g.Repo)
	if err != nil {
		apiErr := &APIError{Operation: "get repository", Repo: g.Fullname(), Err: err}
		if resp != nil {
			apiErr.StatusCode = resp.StatusCode
			if resp.StatusCode == http.StatusNotFound {
				apiErr.Err = ErrNotFound
			}
		}
		return nil, apiErr
	}

	return &Repository{
		FullName:      repo.GetFullName(),
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		DefaultBranch: repo.GetDefaultBranch(),
		CloneURL:      repo.GetCloneURL(),
		SSHURL:        repo.GetSSHURL(),
		HTMLURL:       repo.GetHTMLURL(),
		Private:       repo.GetPrivate(),
		Archived:      repo.GetArchived(),
	}, nil
}

func (r *Resolver) accepts(host string) bool {
	host = strings.ToLower(host)
	for _, h := range r.hosts {
		if host == h {
			return true
		}
	}
	return false
}
