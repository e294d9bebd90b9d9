package email

import "strings"

// Substitute replaces every {{FIELD}} token in tpl with the matching value
// from fields. The scan is a single pass over the template: substituted
// values are never re-scanned, so a value that happens to contain "{{...}}"
// stays inert, and characters that are special to regexp engines need no
// escaping. Tokens that do not name a known field are left untouched.
func Substitute(tpl string, fields map[string]string) string {
	var b strings.Builder
	b.Grow(len(tpl))

	i := 0
	for i < len(tpl) {
		open := strings.Index(tpl[i:], "{{")
		if open < 0 {
			b.WriteString(tpl[i:])
			break
		}
		open += i

		close := strings.Index(tpl[open+2:], "}}")
		if close < 0 {
			b.WriteString(tpl[i:])
			break
		}

		name := tpl[open+2 : open+2+close]
		value, known := fields[name]
		if !known {
			// Not a field token. Emit the braces and keep scanning right
			// after them so nested "{{" sequences are still found.
			b.WriteString(tpl[i : open+2])
			i = open + 2
			continue
		}

		b.WriteString(tpl[i:open])
		b.WriteString(value)
		i = open + 2 + close + 2
	}

	return b.String()
}
