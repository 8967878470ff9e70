package mapping

import (
	"reflect"
	"strings"
)

// EntityName is the default entity naming: the kebab-case Go type name.
func EntityName(t reflect.Type) string {
	return toKebabCase(t.Name())
}

// toKebabCase converts a PascalCase Go struct name to kebab-case.
// e.g. "UserAccount" → "user-account", "HTTPServer" → "h-t-t-p-server"
func toKebabCase(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteByte(byte(r - 'A' + 'a'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
