package provider

import (
	"net/url"
	"strings"
)

// GenericFromURL applies the generic layout to a net/url value.
func GenericFromURL(u *url.URL) (Generic, error) {
	if u.Scheme == "file" {
		return Generic{}, unsupported(genericName, "file urls have no owner")
	}
	return parseGenericPath(u.Path)
}

func GitLabFromURL(u *url.URL) (GitLab, error) {
	return parseGitLabPath(u.Path)
}

// AzureDevOpsFromURL treats any scheme containing "http" as the web form.
func AzureDevOpsFromURL(u *url.URL) (AzureDevOps, error) {
	if strings.Contains(u.Scheme, "http") {
		return parseAzureHTTPPath(u.Path)
	}
	return parseAzureSSHPath(u.Path)
}
