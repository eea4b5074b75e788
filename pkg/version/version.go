// Package version reports the build version injected at link time.
//
//	go build -ldflags "-X github.com/goliatone/giturl/pkg/version.Version=v1.2.3 \
//	  -X github.com/goliatone/giturl/pkg/version.Commit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Set with -ldflags.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Release   bool   `json:"release" yaml:"release"`
}

// Get returns the build info. Release is true only when Version is a valid
// semantic version that is neither a pre-release nor a pseudo-version.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}

	if v, err := semver.NewVersion(normalize(Version)); err == nil {
		info.Release = v.Prerelease() == "" && !isPseudoVersion(normalize(Version))
	}
	return info
}

// String renders the info on one line.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "giturl %s", i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&b, " (%s", i.Commit)
		if i.Date != "" {
			fmt.Fprintf(&b, ", %s", i.Date)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, " %s", i.GoVersion)
	return b.String()
}

// Print writes the current build info to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, Get().String())
	return err
}

// Older reports whether current < target.
//
// A pseudo-version is older than any tagged target. Two pseudo-versions
// compare lexicographically, which orders them by timestamp.
func Older(current, target string) (bool, error) {
	currentNorm := normalize(current)
	targetNorm := normalize(target)

	if isPseudoVersion(currentNorm) {
		if !isPseudoVersion(targetNorm) {
			return true, nil
		}
		return currentNorm < targetNorm, nil
	}

	currentVer, err := semver.NewVersion(currentNorm)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	targetVer, err := semver.NewVersion(targetNorm)
	if err != nil {
		return false, fmt.Errorf("invalid target version %q: %w", target, err)
	}
	return currentVer.LessThan(targetVer), nil
}

func normalize(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// isPseudoVersion matches the Go form base-yyyymmddhhmmss-commit.
func isPseudoVersion(version string) bool {
	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return false
	}

	timestamp := parts[len(parts)-2]
	if i := strings.LastIndexByte(timestamp, '.'); i >= 0 {
		timestamp = timestamp[i+1:]
	}
	if len(timestamp) != 14 {
		return false
	}
	for _, ch := range timestamp {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(parts[len(parts)-1]) == 12
}
