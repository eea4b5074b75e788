package giturl

import (
	"strings"
	"unicode/utf8"
)

// GitURL is a parsed clone URL. Values are only produced by Parse and are
// not modified afterwards.
type GitURL struct {
	scheme      *string
	user        *string
	token       *string
	host        *string
	port        *uint16
	path        string
	printScheme bool
	hint        Hint
}

// Scheme returns the scheme. SSH-like and file-like URLs always have one,
// even when the input did not spell it out.
func (u *GitURL) Scheme() (string, bool) { return deref(u.scheme) }

// User returns the first part of the userinfo.
func (u *GitURL) User() (string, bool) { return deref(u.user) }

// Token returns the password or access token from the userinfo.
func (u *GitURL) Token() (string, bool) { return deref(u.token) }

func (u *GitURL) Host() (string, bool) { return deref(u.host) }

func (u *GitURL) Port() (uint16, bool) { return deref(u.port) }

// Path is never empty. For SSH-like URLs it is relative to the login
// directory, without the leading ':' or '/'.
func (u *GitURL) Path() string { return u.path }

// PrintScheme reports whether the input wrote the scheme explicitly.
func (u *GitURL) PrintScheme() bool { return u.printScheme }

func (u *GitURL) Hint() Hint { return u.hint }

// TrimAuth returns a copy without user and token.
func (u *GitURL) TrimAuth() *GitURL {
	c := *u
	c.user = nil
	c.token = nil
	return &c
}

// Equal reports whether both values hold the same fields.
func (u *GitURL) Equal(other *GitURL) bool {
	if u == nil || other == nil {
		return u == other
	}
	return equalPtr(u.scheme, other.scheme) &&
		equalPtr(u.user, other.user) &&
		equalPtr(u.token, other.token) &&
		equalPtr(u.host, other.host) &&
		equalPtr(u.port, other.port) &&
		u.path == other.path &&
		u.printScheme == other.printScheme &&
		u.hint == other.hint
}

// Parser parses clone URLs. The zero value is not usable; use NewParser.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	logger Logger
	strict bool
}

// NewParser returns a parser with the strict check enabled and logging
// discarded, adjusted by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: nopLogger{},
		strict: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses input with the default parser.
func Parse(input string) (*GitURL, error) {
	return defaultParser.Parse(input)
}

// Parse recognizes, classifies, normalizes and validates input. Every
// failure is a *ParseError.
func (p *Parser) Parse(input string) (*GitURL, error) {
	if strings.ContainsRune(input, 0) {
		return nil, &ParseError{Input: input, Kind: ErrFoundNullBytes}
	}

	spec := parseSpec(expandShortForm(input))
	p.logger.Debug("giturl: recognized input",
		"scheme", optional(spec.scheme),
		"userinfo", spec.authority.user != nil,
		"host", optional(spec.authority.host),
		"path", spec.path,
		"trailing", spec.trailing,
	)

	u := finalize(spec)
	p.logger.Debug("giturl: classified input", "hint", u.hint)

	if err := p.validate(u, spec.authority.rejectedPort); err != nil {
		err.Input = input
		p.logger.Debug("giturl: rejected input", "error", err)
		return nil, err
	}
	return u, nil
}

// expandShortForm rewrites `git:host/path` as `git://host/path`.
func expandShortForm(input string) string {
	if strings.HasPrefix(input, "git:") && !strings.HasPrefix(input, "git://") {
		return "git://" + input[len("git:"):]
	}
	return input
}

// finalize classifies the recognized fields and applies the per-hint
// corrections: SSH-like URLs get the "ssh" scheme and lose the separator
// that marked them, file-like URLs get the "file" scheme.
func finalize(spec urlSpec) *GitURL {
	u := &GitURL{
		scheme:      spec.scheme,
		user:        spec.authority.user,
		token:       spec.authority.token,
		host:        spec.authority.host,
		port:        spec.authority.port,
		path:        spec.path,
		printScheme: spec.scheme != nil,
		hint:        classify(spec),
	}

	switch u.hint {
	case HintSSHLike:
		u.scheme = ref("ssh")
		_, width := utf8.DecodeRuneInString(u.path)
		u.path = u.path[width:]
	case HintFileLike:
		u.scheme = ref("file")
	}
	return u
}

func ref[T any](v T) *T {
	return &v
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
