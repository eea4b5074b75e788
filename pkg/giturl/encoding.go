package giturl

import "gopkg.in/yaml.v3"

// MarshalText renders the display form. encoding/json uses it too, so a
// GitURL is a JSON string.
func (u GitURL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses text with the default parser.
func (u *GitURL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

func (u GitURL) MarshalYAML() (any, error) {
	return u.String(), nil
}

func (u *GitURL) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(text))
}
