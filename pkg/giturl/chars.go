package giturl

import "unicode"

// isUnreserved reports alphanumerics (any script) plus "-._~".
func isUnreserved(r rune) bool {
	switch r {
	case '-', '.', '_', '~':
		return true
	}
	return isAlnum(r)
}

// isSubDelim reports the RFC 3986 sub-delims plus '\', which lets Windows
// paths through the grammar.
func isSubDelim(r rune) bool {
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '\\':
		return true
	}
	return false
}

func isPathChar(r rune) bool {
	return isUnreserved(r) || isSubDelim(r) || r == ':' || r == '@'
}

func isRegNameChar(r rune) bool {
	return isUnreserved(r) || isSubDelim(r)
}

func isUserinfoChar(r rune) bool {
	return isRegNameChar(r) || r == ':'
}

// isDriveChar is a reg-name character other than '\'. A run of these
// followed by `:\` marks a Windows drive path.
func isDriveChar(r rune) bool {
	return r != '\\' && isRegNameChar(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSchemeStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isSchemeChar(r rune) bool {
	switch r {
	case '+', '-', '.':
		return true
	}
	return isSchemeStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
