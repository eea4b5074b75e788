package provider

import (
	"strings"

	"github.com/goliatone/giturl/pkg/giturl"
)

const gitlabName = "gitlab"

// GitLab is an owner/repo layout with any number of subgroups in between.
type GitLab struct {
	Owner     string   `json:"owner" yaml:"owner"`
	Subgroups []string `json:"subgroups,omitempty" yaml:"subgroups,omitempty"`
	Repo      string   `json:"repo" yaml:"repo"`
}

func (g GitLab) Fullname() string {
	parts := make([]string, 0, len(g.Subgroups)+2)
	parts = append(parts, g.Owner)
	parts = append(parts, g.Subgroups...)
	parts = append(parts, g.Repo)
	return strings.Join(parts, "/")
}

func ParseGitLab(u *giturl.GitURL) (GitLab, error) {
	return parseGitLabPath(u.Path())
}

func parseGitLabPath(path string) (GitLab, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "/"), ".git")

	var parts []string
	for _, p := range strings.Split(trimmed, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return GitLab{}, parseFailure(gitlabName, path, "path needs at least owner/repo")
	}

	g := GitLab{
		Owner: parts[0],
		Repo:  parts[len(parts)-1],
	}
	if len(parts) > 2 {
		g.Subgroups = parts[1 : len(parts)-1]
	}
	return g, nil
}
