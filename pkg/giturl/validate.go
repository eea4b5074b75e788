package giturl

import (
	"fmt"
	"strings"
)

// validate checks the invariants in order and stops at the first failure.
func (p *Parser) validate(u *GitURL, rejectedPort *string) *ParseError {
	switch {
	case u.path == "":
		return &ParseError{Kind: ErrInvalidPathEmpty}

	// With a scheme there is no scp form to fall back to, so any text after
	// the host's ':' must be a port.
	case rejectedPort != nil && u.printScheme:
		return &ParseError{Kind: ErrInvalidPortNumber, Detail: badPortDetail(*rejectedPort)}

	case strings.HasPrefix(u.path, ":") && u.hint != HintSSHLike:
		detail := "path starts with ':'"
		if rejectedPort != nil {
			detail = badPortDetail(*rejectedPort)
		}
		return &ParseError{Kind: ErrInvalidPortNumber, Detail: detail}

	case u.token != nil && u.hint != HintHTTPLike:
		return &ParseError{Kind: ErrInvalidTokenUnsupported, Detail: fmt.Sprintf("hint is %s", u.hint)}

	case u.hint == HintFileLike && (u.user != nil || u.token != nil || u.host != nil || u.port != nil):
		return &ParseError{Kind: ErrInvalidFilePattern}
	}

	if !p.strict {
		return nil
	}
	if _, err := u.ToURL(); err != nil {
		return &ParseError{Kind: ErrURLParse, Err: err}
	}
	return nil
}

func badPortDetail(text string) string {
	return fmt.Sprintf("port %q is not a number between 0 and 65535", text)
}
