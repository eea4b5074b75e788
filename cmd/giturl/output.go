package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/giturl/pkg/giturl"
)

const maskedToken = "xxxxx"

// field is one line of text output.
type field struct {
	name  string
	value string
}

// emit writes view as JSON or YAML, or calls text for the text format.
func (a *app) emit(w io.Writer, view any, text func(io.Writer) error) error {
	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func writeFields(w io.Writer, fields []field) error {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.name))
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, f.name+":", f.value); err != nil {
			return err
		}
	}
	return nil
}

// urlView is the printable form of a GitURL. Tokens are masked.
type urlView struct {
	URL         string  `json:"url" yaml:"url"`
	Scheme      string  `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	User        string  `json:"user,omitempty" yaml:"user,omitempty"`
	Token       string  `json:"token,omitempty" yaml:"token,omitempty"`
	Host        string  `json:"host,omitempty" yaml:"host,omitempty"`
	Port        *uint16 `json:"port,omitempty" yaml:"port,omitempty"`
	Path        string  `json:"path" yaml:"path"`
	PrintScheme bool    `json:"print_scheme" yaml:"print_scheme"`
	Hint        string  `json:"hint" yaml:"hint"`
}

func newURLView(u *giturl.GitURL) urlView {
	v := urlView{
		URL:         maskedString(u),
		Path:        u.Path(),
		PrintScheme: u.PrintScheme(),
		Hint:        u.Hint().String(),
	}
	v.Scheme, _ = u.Scheme()
	v.User, _ = u.User()
	v.Host, _ = u.Host()
	if _, ok := u.Token(); ok {
		v.Token = maskedToken
	}
	if port, ok := u.Port(); ok {
		v.Port = &port
	}
	return v
}

func (v urlView) fields() []field {
	fields := []field{{"url", v.URL}}
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, field{name, value})
		}
	}
	add("scheme", v.Scheme)
	add("user", v.User)
	add("token", v.Token)
	add("host", v.Host)
	if v.Port != nil {
		add("port", strconv.FormatUint(uint64(*v.Port), 10))
	}
	add("path", v.Path)
	add("print_scheme", strconv.FormatBool(v.PrintScheme))
	add("hint", v.Hint)
	return fields
}

// maskedString renders u for display without exposing its token. URLs with
// a token are shown in their strict form with the password redacted.
func maskedString(u *giturl.GitURL) string {
	if _, ok := u.Token(); !ok {
		return u.String()
	}
	if strict, err := u.ToURL(); err == nil {
		return strict.Redacted()
	}
	return u.TrimAuth().String()
}
