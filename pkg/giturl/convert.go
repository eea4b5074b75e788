package giturl

import (
	"errors"
	"net/url"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ToURL converts u to a net/url value through its compatibility form.
func (u *GitURL) ToURL() (*url.URL, error) {
	rendered := u.URLString()
	parsed, err := url.Parse(rendered)
	if err == nil && !parsed.IsAbs() {
		err = errNotAbsolute
	}
	if err != nil {
		return nil, &URLCheckError{Rendered: rendered, Err: err}
	}
	return parsed, nil
}

// ParseToURL parses input and converts the result with ToURL.
func ParseToURL(input string) (*url.URL, error) {
	u, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return u.ToURL()
}

// FromURL parses the string form of a net/url value.
func FromURL(v *url.URL) (*GitURL, error) {
	if v == nil {
		return nil, &ParseError{Kind: ErrInvalidPathEmpty, Err: errors.New("nil url")}
	}
	return Parse(v.String())
}

// Endpoint converts u to a go-git transport endpoint. File-like URLs are
// handed over as plain paths so relative paths stay relative.
func (u *GitURL) Endpoint() (*transport.Endpoint, error) {
	if u.hint == HintFileLike {
		return transport.NewEndpoint(u.path)
	}
	return transport.NewEndpoint(u.URLString())
}
