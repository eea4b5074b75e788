package provider

import (
	"strings"

	"github.com/goliatone/giturl/pkg/giturl"
)

const genericName = "generic"

// Generic is the owner/repo layout shared by GitHub, Bitbucket, Gitea and
// most self-hosted services.
type Generic struct {
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
}

func (g Generic) Fullname() string {
	return g.Owner + "/" + g.Repo
}

// ParseGeneric takes the last path segment, without ".git", as the
// repository and the segment before it as the owner. Filesystem paths are
// rejected with giturl.ErrProviderUnsupported.
func ParseGeneric(u *giturl.GitURL) (Generic, error) {
	if u.Hint() == giturl.HintFileLike {
		return Generic{}, unsupported(genericName, "file urls have no owner")
	}
	return parseGenericPath(u.Path())
}

func parseGenericPath(path string) (Generic, error) {
	parts := splitPath(path)
	if len(parts) < 2 {
		return Generic{}, parseFailure(genericName, path, "path needs owner/repo")
	}

	g := Generic{
		Owner: parts[len(parts)-2],
		Repo:  strings.TrimSuffix(parts[len(parts)-1], ".git"),
	}
	if anyEmpty(g.Owner, g.Repo) {
		return Generic{}, parseFailure(genericName, path, "empty owner or repo segment")
	}
	return g, nil
}
