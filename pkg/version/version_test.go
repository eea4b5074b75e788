package version

import (
	"bytes"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestGet(t *testing.T) {
	tests := []struct {
		version string
		release bool
	}{
		{version: "dev", release: false},
		{version: "v1.4.0", release: true},
		{version: "1.4.0", release: true},
		{version: "v1.5.0-rc.1", release: false},
		{version: "v0.0.0-20240101120000-abcdef123456", release: false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version, "", "")
			info := Get()
			if info.Version != tt.version {
				t.Errorf("Version = %q, want %q", info.Version, tt.version)
			}
			if info.Release != tt.release {
				t.Errorf("Release = %v, want %v", info.Release, tt.release)
			}
			if info.GoVersion == "" {
				t.Error("GoVersion should be set")
			}
		})
	}
}

func TestPrint(t *testing.T) {
	withVersion(t, "v1.0.0", "abc1234", "2026-01-02")

	var buf bytes.Buffer
	if err := Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "giturl v1.0.0 (abc1234, 2026-01-02) go") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestOlder(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
		wantErr bool
	}{
		{name: "older patch", current: "v1.2.3", target: "v1.2.4", want: true},
		{name: "same", current: "v1.2.3", target: "1.2.3"},
		{name: "newer", current: "v2.0.0", target: "v1.9.9"},
		{name: "prerelease is older", current: "v1.0.0-alpha", target: "v1.0.0", want: true},
		{name: "build metadata ignored", current: "v1.0.0+build.5", target: "v1.0.0"},
		{name: "pseudo vs tag", current: "v0.0.0-20240101120000-abcdef123456", target: "v0.1.0", want: true},
		{name: "pseudo vs pseudo", current: "v0.0.0-20240101120000-abcdef123456", target: "v0.0.0-20240201120000-abcdef123456", want: true},
		{name: "invalid current", current: "dev", target: "v1.0.0", wantErr: true},
		{name: "invalid target", current: "v1.0.0", target: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Older(tt.current, tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Older() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Older() = %v, want %v", got, tt.want)
			}
		})
	}
}
