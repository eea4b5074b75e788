package giturl

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// urlSpec is what the grammar recognized, before any classification.
type urlSpec struct {
	scheme    *string
	authority authority
	path      string
	// trailing is input the grammar stopped short of (query, fragment, or
	// any character outside the path alphabet). It is not part of the result.
	trailing string
}

type authority struct {
	user  *string
	token *string
	host  *string
	port  *uint16
	// rejectedPort holds the text after a host's ':' when it did not read
	// as a 16-bit port.
	rejectedPort *string
}

// parseSpec runs the scheme, authority and path recognizers left to right.
// When the hier-part cannot be recognized the authority and path are left
// empty and the scheme, if any, is kept.
func parseSpec(input string) urlSpec {
	s := scanner{input: input}

	var spec urlSpec
	if scheme, ok := parseScheme(&s); ok {
		spec.scheme = &scheme
	}

	t := s
	auth, ok := parseAuthority(&t)
	if ok {
		if path := parsePath(&t); path != "" {
			spec.authority = auth
			spec.path = path
			s = t
		}
	}

	spec.trailing = s.rest()
	return spec
}

// parseScheme matches <alpha><alnum|+|-|.>*"://" and consumes through the
// slashes.
func parseScheme(s *scanner) (string, bool) {
	t := *s
	if !isSchemeStart(t.peek()) {
		return "", false
	}
	scheme := t.run(isSchemeChar)
	if !t.consume("://") {
		return "", false
	}
	*s = t
	return scheme, true
}

// parseAuthority recognizes [user[:token]@][host][:port]. It only fails when
// userinfo is present but malformed.
func parseAuthority(s *scanner) (authority, bool) {
	var auth authority

	user, token, ok := parseUserinfo(s)
	if !ok {
		return authority{}, false
	}
	auth.user, auth.token = user, token

	if isDrivePath(*s) {
		return authority{}, true
	}

	t := *s
	if host := t.run(isRegNameChar); validHost(host) {
		auth.host = &host
		*s = t
	}

	t = *s
	if t.consume(":") {
		text := t.run(isRegNameChar)
		if port, err := strconv.ParseUint(text, 10, 16); err == nil {
			p := uint16(port)
			auth.port = &p
			*s = t
		} else {
			auth.rejectedPort = &text
		}
	}

	return auth, true
}

// parseUserinfo consumes `user[:token]@` when present. A userinfo with a ':'
// must have a non-empty user and token on either side of it.
func parseUserinfo(s *scanner) (user, token *string, ok bool) {
	t := *s
	info := t.run(isUserinfoChar)
	if info == "" || !t.consume("@") {
		return nil, nil, true
	}

	name, secret, hasSecret := strings.Cut(info, ":")
	if !hasSecret {
		*s = t
		return &name, nil, true
	}
	if i := strings.IndexByte(secret, ':'); i >= 0 {
		secret = secret[:i]
	}
	if name == "" || secret == "" {
		return nil, nil, false
	}
	*s = t
	return &name, &secret, true
}

// isDrivePath peeks for a Windows drive prefix such as `c:\`.
func isDrivePath(s scanner) bool {
	s.run(isDriveChar)
	return strings.HasPrefix(s.rest(), `:\`)
}

// validHost rejects hosts made only of punctuation.
func validHost(host string) bool {
	if host == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(host)
	return isAlnum(r)
}

// pathAlternatives are tried in order; the first one that matches wins.
var pathAlternatives = []func(*scanner) bool{
	pathAbempty,
	pathRootless,
	pathSSH,
}

func parsePath(s *scanner) string {
	for _, alt := range pathAlternatives {
		t := *s
		if alt(&t) {
			path := s.input[s.pos:t.pos]
			*s = t
			return path
		}
	}
	return ""
}

// pathAbempty matches one or more "/" segment groups.
func pathAbempty(s *scanner) bool {
	if !s.consume("/") {
		return false
	}
	s.run(isPathChar)
	pathSegments(s)
	return true
}

// pathRootless matches a path that starts with a segment character other
// than the scp separator.
func pathRootless(s *scanner) bool {
	if r := s.peek(); r == ':' || r == eof || !isPathChar(r) {
		return false
	}
	s.run(isPathChar)
	pathSegments(s)
	return true
}

// pathSSH matches the scp form ":segment[/segment...]".
func pathSSH(s *scanner) bool {
	if !s.consume(":") {
		return false
	}
	s.run(isPathChar)
	pathSegments(s)
	return true
}

func pathSegments(s *scanner) {
	for s.consume("/") {
		s.run(isPathChar)
	}
}
