package markup

import "strings"

// normalize collapses runs of horizontal whitespace to a single space,
// collapses blank-line runs to at most one blank line, and trims
// leading and trailing whitespace from the result.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpaceRun := false
	newlines := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			inSpaceRun = true
		case '\n':
			inSpaceRun = false
			newlines++
		default:
			if newlines > 0 {
				if newlines > 2 {
					newlines = 2
				}
				b.WriteString(strings.Repeat("\n", newlines))
				newlines = 0
			} else if inSpaceRun {
				b.WriteRune(' ')
			}
			inSpaceRun = false
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
