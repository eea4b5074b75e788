package gitutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGitHubToken(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "none", env: map[string]string{}, want: ""},
		{name: "GITHUB_TOKEN", env: map[string]string{"GITHUB_TOKEN": "a"}, want: "a"},
		{name: "GH_TOKEN", env: map[string]string{"GH_TOKEN": "b"}, want: "b"},
		{name: "GITHUB_ACCESS_TOKEN", env: map[string]string{"GITHUB_ACCESS_TOKEN": "c"}, want: "c"},
		{
			name: "tool specific wins",
			env:  map[string]string{"GITURL_GITHUB_TOKEN": "x", "GITHUB_TOKEN": "a", "GH_TOKEN": "b"},
			want: "x",
		},
		{
			name: "GITHUB_TOKEN before GH_TOKEN",
			env:  map[string]string{"GITHUB_TOKEN": "a", "GH_TOKEN": "b"},
			want: "a",
		},
		{
			name: "whitespace only is skipped",
			env:  map[string]string{"GITHUB_TOKEN": "  ", "GH_TOKEN": " b\n"},
			want: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GitHubToken(func(key string) string { return tt.env[key] })
			if got != tt.want {
				t.Errorf("GitHubToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenEnvVars(t *testing.T) {
	want := []string{"GITURL_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN", "GITHUB_ACCESS_TOKEN"}
	got := TokenEnvVars()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TokenEnvVars mismatch (-want +got):\n%s", diff)
	}
	got[0] = "mutated"
	if TokenEnvVars()[0] != want[0] {
		t.Error("TokenEnvVars should return a copy")
	}
}
