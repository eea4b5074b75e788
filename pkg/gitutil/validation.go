package gitutil

import (
	"fmt"
	"regexp"
)

const maxNameLength = 100

// GitHub names can contain alphanumeric characters, hyphens, underscores,
// and dots but cannot start or end with hyphens or dots.
var githubNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// NameError reports an owner or repository name GitHub would reject.
type NameError struct {
	Kind   string
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s name: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// ValidateRepoName validates a GitHub repository name.
func ValidateRepoName(name string) error {
	return validateGitHubName(name, "repository")
}

// ValidateOwnerName validates a GitHub owner or organization name.
func ValidateOwnerName(name string) error {
	return validateGitHubName(name, "owner")
}

func validateGitHubName(name, kind string) error {
	switch {
	case name == "":
		return &NameError{Kind: kind, Reason: "cannot be empty"}
	case len(name) > maxNameLength:
		return &NameError{Kind: kind, Name: name, Reason: fmt.Sprintf("exceeds maximum length of %d characters", maxNameLength)}
	case !githubNamePattern.MatchString(name):
		return &NameError{Kind: kind, Name: name, Reason: "must start and end with alphanumeric characters and can only contain alphanumeric, dots, hyphens, and underscores"}
	}
	return nil
}

// IsValidGitHubName checks if a name follows GitHub naming conventions.
func IsValidGitHubName(name string) bool {
	return validateGitHubName(name, "") == nil
}
