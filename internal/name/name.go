// Package name derives legacy short (8.3) name components from long path segments.
package name

import (
	"strconv"
	"strings"
)

const (
	// maxTokenLength is the number of characters kept before the collision suffix.
	maxTokenLength = 6
	// maxExtLength is the number of characters kept in an extension token, including its dot.
	maxExtLength = 4
)

// replacer maps characters which are valid in long names but not in short ones.
var replacer = strings.NewReplacer(",", "_", "+", "_", ";", "_", "=", "_", "[", "_", "]", "_")

// isAllowed reports whether a character is kept in short names. Spaces are dropped, as Windows does
// (My Documents becomes MYDOCU~1).
func isAllowed(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	}
	return strings.ContainsRune("!#$%&'()-@^_`{}~", r)
}

// Token returns the uppercased, filtered and truncated prefix of a short name.
func Token(segment string) string {
	segment = replacer.Replace(strings.ToUpper(segment))
	var b strings.Builder
	for _, r := range segment {
		if b.Len() == maxTokenLength {
			break
		}
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ext returns the segment's extension, including its leading dot. Names whose only dot is their
// first character (.bashrc) do not have one, while ..config has .config.
func ext(segment string) string {
	i := strings.LastIndexByte(segment, '.')
	if i <= 0 {
		return ""
	}
	return segment[i:]
}

// ExtToken returns the dotted extension of a short name, or an empty string if the segment has no
// usable extension. A lone dot is not an extension.
func ExtToken(segment string) string {
	e := ext(segment)
	if e == "" {
		return ""
	}
	tok := "." + Token(e[1:])
	if len(tok) > maxExtLength {
		tok = tok[:maxExtLength]
	}
	if len(tok) <= 1 {
		return ""
	}
	return tok
}

// Key returns the value shared by all segments which collapse to the same short name, before
// collision numbering.
func Key(segment string) string {
	return Token(segment) + ExtToken(segment)
}

// Short returns the short name of a segment given its collision suffix, for example PROGRA~1.
func Short(segment string, suffix int) string {
	return Token(segment) + "~" + strconv.Itoa(suffix) + ExtToken(segment)
}
