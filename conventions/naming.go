package conventions

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

// FirstUpper upper-cases the first rune of s.
func FirstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FirstLower lower-cases the first rune of s.
func FirstLower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// CamelCase converts separated words ("display_name", "display-name") to
// lower camel case. Names without separators only get a lower-case first rune.
func CamelCase(s string) string {
	if s == "" {
		return s
	}
	if !strings.ContainsAny(s, "_- .") {
		return FirstLower(s)
	}
	return inflect.CamelizeDownFirst(s)
}

// SnakeCase converts a type name to a lower snake case file stem.
func SnakeCase(s string) string {
	if s == "" {
		return s
	}
	return inflect.Underscore(s)
}

// IsReserved reports whether name is a reserved word of the target.
func (e *Engine) IsReserved(name string) bool {
	return e.reserved[name]
}

// Escape appends the escape suffix to reserved names. When used is non-nil
// and the escaped name is already taken, the original name is returned: the
// collision is accepted rather than failing the render.
func (e *Engine) Escape(name string, used map[string]bool) string {
	if !e.reserved[name] {
		return name
	}
	escaped := name + e.conv.EscapeSuffix
	if used != nil && used[escaped] {
		return name
	}
	return escaped
}
