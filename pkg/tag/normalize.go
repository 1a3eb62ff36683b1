// Package tag implements tag canonicalization, the ordered tag set attached
// to a dream being edited, and automatic tag candidate extraction from
// free-text descriptions.
package tag

import "strings"

// Normalize canonicalizes raw tag text: lowercase, strip everything that is
// not a lowercase ASCII letter, digit, or whitespace, then trim. Two raw tags
// normalizing to the same string are the same tag.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
