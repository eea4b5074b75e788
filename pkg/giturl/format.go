package giturl

import (
	"strconv"
	"strings"
)

type renderMode int

const (
	displayMode renderMode = iota
	compatMode
)

// String renders the display form: the scheme only when the input had one,
// and the scp separator for SSH-like URLs written without a scheme or port.
func (u *GitURL) String() string {
	return u.render(displayMode)
}

// URLString renders a form net/url and git both accept. The scheme is
// always present and SSH-like paths are rooted with '/'.
func (u *GitURL) URLString() string {
	return u.render(compatMode)
}

func (u *GitURL) render(mode renderMode) string {
	var b strings.Builder

	if u.scheme != nil && (u.printScheme || mode == compatMode) {
		b.WriteString(*u.scheme)
		b.WriteString("://")
	}

	switch {
	case u.user != nil && u.token != nil:
		b.WriteString(*u.user + ":" + *u.token + "@")
	case u.user != nil:
		b.WriteString(*u.user + "@")
	case u.token != nil:
		b.WriteString(*u.token + "@")
	}

	if u.host != nil {
		b.WriteString(*u.host)
	}

	switch u.hint {
	case HintSSHLike:
		switch {
		case u.port != nil:
			b.WriteString(":" + strconv.Itoa(int(*u.port)) + "/")
		case mode == compatMode || u.printScheme:
			b.WriteString("/")
		default:
			b.WriteString(":")
		}
		b.WriteString(u.path)
	case HintFileLike:
		if mode == compatMode {
			b.WriteString(strings.ReplaceAll(u.path, `\`, "/"))
		} else {
			b.WriteString(u.path)
		}
	default:
		if u.port != nil {
			b.WriteString(":" + strconv.Itoa(int(*u.port)))
		}
		b.WriteString(u.path)
	}

	return b.String()
}
