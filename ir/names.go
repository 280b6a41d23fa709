package ir

import "strings"

// Both backslash and dot separate path segments in qualified names.
const separators = `\.`

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// TrimName strips leading separators, so `\App\User` and `App\User` compare equal.
func TrimName(name string) string {
	return strings.TrimLeft(name, separators)
}

// SplitName returns the non-empty segments of a qualified name.
func SplitName(name string) []string {
	return strings.FieldsFunc(name, isSeparator)
}

// LastSegment returns the final segment of a qualified name.
func LastSegment(name string) string {
	segs := SplitName(name)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// NamespaceOf returns every segment but the last, joined with a backslash.
func NamespaceOf(name string) string {
	segs := SplitName(name)
	if len(segs) < 2 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], `\`)
}

// SameName compares two qualified names ignoring leading separators and the
// choice of separator.
func SameName(a, b string) bool {
	return strings.Join(SplitName(a), `\`) == strings.Join(SplitName(b), `\`)
}

// CanonicalName normalises separators to backslashes and trims the leading one.
func CanonicalName(name string) string {
	return strings.Join(SplitName(name), `\`)
}
