// Package remotes reads the remotes configured in a local repository and
// parses their URLs.
package remotes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/goliatone/giturl/pkg/giturl"
)

// ErrNotRepository is returned when no repository is found at or above the
// given path.
var ErrNotRepository = errors.New("remotes: not a git repository")

// Remote is one configured remote with its parsed URLs, in config order.
type Remote struct {
	Name string
	URLs []Entry
}

// Entry is a single remote URL. Exactly one of URL and Err is set.
type Entry struct {
	URL *giturl.GitURL
	Err error
}

// List opens the repository containing path and parses every remote URL
// with parser. URLs that fail to parse are reported per entry and do not
// fail the call. Remotes are sorted by name.
func List(path string, parser *giturl.Parser) ([]Remote, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("remotes: open %s: %w", path, err)
	}

	configured, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("remotes: read config: %w", err)
	}

	result := make([]Remote, 0, len(configured))
	for _, r := range configured {
		cfg := r.Config()
		remote := Remote{Name: cfg.Name}
		for _, raw := range cfg.URLs {
			u, err := parser.Parse(raw)
			remote.URLs = append(remote.URLs, Entry{URL: u, Err: err})
		}
		result = append(result, remote)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
