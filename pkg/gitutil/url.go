package gitutil

import (
	"fmt"
	"strings"

	"golang.org/x/mod/module"

	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/giturl/provider"
)

// DefaultHost is assumed for owner/repo shorthands.
const DefaultHost = "github.com"

// ParseRepoURL parses a repository string into a structured RepoURL.
// Handles various formats:
// - user/repo (assumes GitHub)
// - github.com/user/repo
// - https://github.com/user/repo.git, git@github.com:user/repo.git and any
// other network clone URL giturl.Parse accepts
func ParseRepoURL(repo string) (*RepoURL, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, fmt.Errorf("repository string cannot be empty")
	}

	if isShorthand(repo) {
		return parseShorthand(repo)
	}

	u, err := giturl.Parse(repo)
	if err != nil {
		return nil, err
	}
	return fromGitURL(u, repo)
}

// FromGitURL builds a RepoURL from an already parsed URL.
func FromGitURL(u *giturl.GitURL) (*RepoURL, error) {
	return fromGitURL(u, u.String())
}

func fromGitURL(u *giturl.GitURL, original string) (*RepoURL, error) {
	host, ok := u.Host()
	if !ok || u.Hint() == giturl.HintFileLike {
		return nil, fmt.Errorf("repository URL has no host: %s", redact(u))
	}

	g, err := provider.ParseGeneric(u)
	if err != nil {
		return nil, err
	}

	result := &RepoURL{
		Host:     host,
		Owner:    g.Owner,
		Name:     g.Repo,
		Path:     trimRepoPath(u.Path()),
		Protocol: protocolOf(u),
		CloneURL: original,
	}
	result.HTTPSURL = fmt.Sprintf("https://%s/%s.git", result.Host, result.Path)
	result.SSHURL = fmt.Sprintf("git@%s:%s.git", result.Host, result.Path)
	return result, nil
}

// isShorthand matches owner/repo and host/owner/repo, which carry no
// scheme, userinfo or scp separator.
func isShorthand(repo string) bool {
	if strings.ContainsAny(repo, ":@\\") {
		return false
	}
	switch repo[0] {
	case '/', '.', '~':
		return false
	}
	n := strings.Count(strings.TrimSuffix(repo, "/"), "/")
	return n == 1 || n == 2
}

func parseShorthand(repo string) (*RepoURL, error) {
	parts := strings.Split(strings.TrimSuffix(repo, "/"), "/")

	var result RepoURL
	switch len(parts) {
	case 2:
		result.Host = DefaultHost
		result.Owner = parts[0]
		result.Name = strings.TrimSuffix(parts[1], ".git")
	case 3:
		result.Host = parts[0]
		result.Owner = parts[1]
		result.Name = strings.TrimSuffix(parts[2], ".git")
	}

	if result.Host == "" || result.Owner == "" || result.Name == "" {
		return nil, fmt.Errorf("invalid repository format: %s", repo)
	}

	result.Path = result.Owner + "/" + result.Name
	result.Protocol = ProtocolHTTPS
	result.HTTPSURL = fmt.Sprintf("https://%s/%s.git", result.Host, result.Path)
	result.SSHURL = fmt.Sprintf("git@%s:%s.git", result.Host, result.Path)
	result.CloneURL = result.HTTPSURL
	return &result, nil
}

func protocolOf(u *giturl.GitURL) Protocol {
	if u.Hint() == giturl.HintSSHLike {
		return ProtocolSSH
	}
	scheme, _ := u.Scheme()
	switch strings.ToLower(scheme) {
	case "https":
		return ProtocolHTTPS
	case "http":
		return ProtocolHTTP
	case "git":
		return ProtocolGit
	default:
		return Protocol(strings.ToLower(scheme))
	}
}

func trimRepoPath(path string) string {
	return strings.TrimSuffix(strings.Trim(path, "/"), ".git")
}

// redact renders u without credentials for error messages.
func redact(u *giturl.GitURL) string {
	return u.TrimAuth().String()
}

// BuildCloneURL constructs a cloneable git URL from a repository string.
// ProtocolSSH yields the scp form, HTTPS and git yield HTTPS, and any other
// protocol returns the input unchanged.
func BuildCloneURL(repo string, protocol Protocol) (string, error) {
	parsed, err := ParseRepoURL(repo)
	if err != nil {
		return "", err
	}

	switch protocol {
	case ProtocolSSH:
		return parsed.SSHURL, nil
	case ProtocolHTTPS, ProtocolGit:
		return parsed.HTTPSURL, nil
	default:
		return parsed.CloneURL, nil
	}
}

// NormalizeURL normalizes git URLs for comparison. Network URLs of any form
// become https://host/path in lowercase without ".git", so the ssh and https
// remotes of one repository compare equal. Anything else is trimmed and
// lowercased.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := giturl.Parse(raw); err == nil {
		if host, ok := u.Host(); ok && u.Hint() != giturl.HintFileLike {
			return strings.ToLower("https://" + host + "/" + trimRepoPath(u.Path()))
		}
	}

	return strings.ToLower(strings.TrimSuffix(raw, ".git"))
}

// ExtractRepoName extracts the repository name from a git URL or path.
func ExtractRepoName(repo string) string {
	parsed, err := ParseRepoURL(repo)
	if err != nil {
		// Fallback: try to extract from the string directly
		repo = strings.TrimSuffix(strings.TrimRight(repo, "/\\"), ".git")
		if i := strings.LastIndexAny(repo, "/\\:"); i >= 0 {
			return repo[i+1:]
		}
		return repo
	}

	return parsed.Name
}

// ExtractOwnerAndRepo extracts owner and repository name from a URL or path.
func ExtractOwnerAndRepo(repo string) (owner, name string, err error) {
	parsed, err := ParseRepoURL(repo)
	if err != nil {
		return "", "", err
	}
	return parsed.Owner, parsed.Name, nil
}

// ModulePath derives the Go module path a repository would be imported as:
// lowercase host followed by the repository path without ".git". The result
// is checked with module.CheckPath.
func ModulePath(u *giturl.GitURL) (string, error) {
	host, ok := u.Host()
	if !ok || host == "" || u.Hint() == giturl.HintFileLike {
		return "", fmt.Errorf("module path requires a network url: %s", redact(u))
	}

	path := strings.ToLower(host) + "/" + trimRepoPath(u.Path())
	if err := module.CheckPath(path); err != nil {
		return "", err
	}
	return path, nil
}
