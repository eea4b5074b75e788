package provider

import (
	"strings"

	"github.com/goliatone/giturl/pkg/giturl"
)

const azureName = "azure"

// AzureDevOps is the organization/project/repository layout.
type AzureDevOps struct {
	Org     string `json:"org" yaml:"org"`
	Project string `json:"project" yaml:"project"`
	Repo    string `json:"repo" yaml:"repo"`
}

func (a AzureDevOps) Fullname() string {
	return a.Org + "/" + a.Project + "/" + a.Repo
}

// ParseAzureDevOps reads `/org/project/_git/repo` from http-like URLs and
// `[v3/]org/project/repo[.git]` from everything else.
func ParseAzureDevOps(u *giturl.GitURL) (AzureDevOps, error) {
	if u.Hint() == giturl.HintHTTPLike {
		return parseAzureHTTPPath(u.Path())
	}
	return parseAzureSSHPath(u.Path())
}

func parseAzureHTTPPath(path string) (AzureDevOps, error) {
	parts := splitPath(path)

	var a AzureDevOps
	switch {
	case len(parts) == 4 && parts[2] == "_git":
		a = AzureDevOps{Org: parts[0], Project: parts[1], Repo: parts[3]}
	case len(parts) == 3 && parts[2] != "_git":
		a = AzureDevOps{Org: parts[0], Project: parts[1], Repo: parts[2]}
	default:
		return AzureDevOps{}, parseFailure(azureName, path, "expected org/project/[_git/]repo")
	}

	if anyEmpty(a.Org, a.Project, a.Repo) {
		return AzureDevOps{}, parseFailure(azureName, path, "empty path segment")
	}
	return a, nil
}

func parseAzureSSHPath(path string) (AzureDevOps, error) {
	parts := splitPath(path)
	switch len(parts) {
	case 4:
		parts = parts[1:]
	case 3:
	default:
		return AzureDevOps{}, parseFailure(azureName, path, "expected [prefix/]org/project/repo")
	}

	a := AzureDevOps{
		Org:     parts[0],
		Project: parts[1],
		Repo:    strings.TrimSuffix(parts[2], ".git"),
	}
	if anyEmpty(a.Org, a.Project, a.Repo) {
		return AzureDevOps{}, parseFailure(azureName, path, "empty path segment")
	}
	return a, nil
}
