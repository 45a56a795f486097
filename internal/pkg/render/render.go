package render

import "strings"

// Substitute replaces {{name}} placeholders in s with the matching value from
// vars. Placeholders without a matching variable render as empty string so a
// missing variable never fails the surrounding send.
func Substitute(s string, vars map[string]string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		end += start

		b.WriteString(s[:start])
		name := strings.TrimSpace(s[start+2 : end])
		if v, ok := vars[name]; ok {
			b.WriteString(v)
		}
		s = s[end+2:]
	}
}
