package gitutil

import "strings"

// Environment variables searched for a GitHub token, in order.
const (
	EnvGiturlToken       = "GITURL_GITHUB_TOKEN"
	EnvGitHubToken       = "GITHUB_TOKEN"
	EnvGHToken           = "GH_TOKEN"
	EnvGitHubAccessToken = "GITHUB_ACCESS_TOKEN"
)

var tokenEnvVars = []string{
	EnvGiturlToken,
	EnvGitHubToken,
	EnvGHToken,
	EnvGitHubAccessToken,
}

// GitHubToken returns the first non-empty token found through getenv, or "".
func GitHubToken(getenv func(string) string) string {
	for _, name := range tokenEnvVars {
		if token := strings.TrimSpace(getenv(name)); token != "" {
			return token
		}
	}
	return ""
}

// TokenEnvVars lists the variables GitHubToken reads.
func TokenEnvVars() []string {
	return append([]string(nil), tokenEnvVars...)
}
