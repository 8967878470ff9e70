package beans

import (
	"unicode"
	"unicode/utf8"
)

// PropertyName derives a property name from a Go field or method name by
// lower-casing its first rune. Names that start with two upper-case runes
// are acronyms and are returned unchanged: "X" → "x", "BirthDate" →
// "birthDate", "URL" → "URL".
func PropertyName(goName string) string {
	if goName == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(goName)
	if size < len(goName) {
		second, _ := utf8.DecodeRuneInString(goName[size:])
		if unicode.IsUpper(first) && unicode.IsUpper(second) {
			return goName
		}
	}
	return string(unicode.ToLower(first)) + goName[size:]
}

// Capitalize is the inverse of PropertyName for accessor lookups:
// "x" → "X", "birthDate" → "BirthDate".
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}
