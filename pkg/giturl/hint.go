package giturl

import "strings"

// Hint is the kind of clone URL an input was recognized as.
type Hint int

const (
	HintUnknown Hint = iota
	HintSSHLike
	HintFileLike
	HintHTTPLike
)

func (h Hint) String() string {
	switch h {
	case HintSSHLike:
		return "ssh"
	case HintFileLike:
		return "file"
	case HintHTTPLike:
		return "http"
	default:
		return "unknown"
	}
}

// classify decides the hint from the recognized fields. The cases are
// evaluated top to bottom; a bare path must be claimed as a file before the
// scp separator check gets a chance at it.
func classify(spec urlSpec) Hint {
	auth := spec.authority
	switch {
	case spec.scheme != nil:
		return schemeHint(*spec.scheme)
	case auth.user == nil && auth.token == nil && auth.host == nil && auth.port == nil && spec.path != "":
		return HintFileLike
	case auth.user != nil && auth.token != nil:
		return HintHTTPLike
	case strings.HasPrefix(spec.path, ":"):
		return HintSSHLike
	default:
		return HintUnknown
	}
}

func schemeHint(scheme string) Hint {
	switch {
	case strings.Contains(scheme, "ssh"):
		return HintSSHLike
	case strings.EqualFold(scheme, "file"):
		return HintFileLike
	default:
		return HintHTTPLike
	}
}
