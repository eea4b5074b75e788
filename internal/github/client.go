package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// DefaultHost is the git host served by the public API.
const DefaultHost = "github.com"

// NewClient creates an API client. An empty token gives an anonymous
// client. An empty endpoint targets github.com; anything else is treated as
// a GitHub Enterprise base URL. base, when set, supplies the transport and
// timeout.
func NewClient(ctx context.Context, token, endpoint string, base *http.Client) (*gh.Client, error) {
	httpClient := base
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		oauthClient := oauth2.NewClient(ctx, ts)

		if base != nil {
			if transport, ok := oauthClient.Transport.(*oauth2.Transport); ok && base.Transport != nil {
				transport.Base = base.Transport
			}
			if base.Timeout > 0 {
				oauthClient.Timeout = base.Timeout
			}
		}
		httpClient = oauthClient
	}

	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return gh.NewClient(httpClient), nil
	}

	baseURL, uploadURL := normalizeEnterpriseEndpoints(endpoint)
	client, err := gh.NewEnterpriseClient(baseURL, uploadURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Enterprise client: %w", err)
	}
	return client, nil
}

// HostForEndpoint returns the git host a resolver should accept for the
// given API endpoint.
func HostForEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return DefaultHost
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Hostname() == "" {
		return DefaultHost
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "api.")
}

func normalizeEnterpriseEndpoints(endpoint string) (string, string) {
	base := strings.TrimSpace(endpoint)
	if base == "" {
		return "", ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	trimmed := strings.TrimSuffix(base, "/")
	if strings.HasSuffix(trimmed, "/api/v3") {
		prefix := strings.TrimSuffix(trimmed, "/api/v3")
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		return prefix + "api/v3/", prefix + "api/uploads/"
	}

	return base, base
}
