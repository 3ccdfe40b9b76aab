// Package markup strips structural markup from raw document text while
// preserving the human-readable content it wraps, so that downstream
// counts reflect what a reader perceives as written text.
package markup

import "strings"

// state identifies the stripper's position in the document. The scan is
// a single left-to-right pass with bounded lookahead; malformed or
// unterminated markup leaves the machine in its current state until the
// end of input, with no backtracking to reinterpret.
type state int

const (
	stateNormal      state = iota
	stateFence             // inside a ``` fenced region, copied verbatim
	stateInlineSpan        // inside a ` inline span, copied verbatim
	stateMath              // inside a $ or $$ span, copied verbatim
	stateTag               // consuming <...> markup, discarded
	stateFrontmatter       // leading metadata block, discarded
)

const (
	frontmatterMarker = "---"
	fenceMarker       = "```"
	mathBlockMarker   = "$$"
)

// Strip removes structural markup syntax from raw document text and
// returns the remaining content text. It is a pure function: fenced
// code, inline spans and math expressions pass through verbatim, tags
// and link targets are discarded, and line-leading structural markers
// (headings, quotes, list bullets, checkboxes, rules, table separator
// rows) are removed. The result is whitespace-normalized.
func Strip(raw string) string {
	runes := []rune(raw)
	var out strings.Builder
	out.Grow(len(raw))

	i := skipFrontmatter(runes, &out)

	st := stateNormal
	closer := "" // closing delimiter for the verbatim states

	for i < len(runes) {
		switch st {
		case stateFence, stateInlineSpan, stateMath:
			// Pass-through mode: everything counts, including the
			// delimiters themselves.
			if hasMarkerAt(runes, i, closer) {
				out.WriteString(closer)
				i += len(closer)
				st = stateNormal
				continue
			}
			out.WriteRune(runes[i])
			i++

		case stateTag:
			if runes[i] == '>' {
				st = stateNormal
			}
			i++

		default: // stateNormal
			st, closer, i = scanNormal(runes, i, &out)
		}
	}

	return normalize(out.String())
}

// scanNormal processes one position in the Normal state and returns the
// next state, the closing delimiter for verbatim states, and the next
// scan position.
func scanNormal(runes []rune, i int, out *strings.Builder) (state, string, int) {
	if atLineStart(runes, i) {
		if ni, dropped := dropStructuralLine(runes, i); dropped {
			return stateNormal, "", ni
		}
		i = stripLineMarkers(runes, i)
		if i >= len(runes) {
			return stateNormal, "", i
		}
	}

	r := runes[i]
	switch r {
	case '`':
		if hasMarkerAt(runes, i, fenceMarker) {
			out.WriteString(fenceMarker)
			return stateFence, fenceMarker, i + len(fenceMarker)
		}
		out.WriteRune(r)
		return stateInlineSpan, "`", i + 1

	case '$':
		if hasMarkerAt(runes, i, mathBlockMarker) {
			out.WriteString(mathBlockMarker)
			return stateMath, mathBlockMarker, i + len(mathBlockMarker)
		}
		out.WriteRune(r)
		return stateMath, "$", i + 1

	case '<':
		return stateTag, "", i + 1

	case '!':
		if i+1 < len(runes) && runes[i+1] == '[' {
			if text, next, ok := extractLinkText(runes, i+1); ok {
				out.WriteString(string(text))
				return stateNormal, "", next
			}
		}
		out.WriteRune(r)
		return stateNormal, "", i + 1

	case '[':
		if text, next, ok := extractLinkText(runes, i); ok {
			out.WriteString(string(text))
			return stateNormal, "", next
		}
		out.WriteRune(r)
		return stateNormal, "", i + 1

	default:
		out.WriteRune(r)
		return stateNormal, "", i + 1
	}
}

// skipFrontmatter discards a leading metadata block delimited by the
// frontmatter marker. The line break immediately following the closing
// marker is preserved. An unterminated block consumes the rest of the
// input, consistent with the streaming state machine.
func skipFrontmatter(runes []rune, out *strings.Builder) int {
	if !hasMarkerAt(runes, 0, frontmatterMarker) {
		return 0
	}
	after := len(frontmatterMarker)
	if after < len(runes) && runes[after] != '\n' && runes[after] != '\r' {
		return 0 // Not a marker line, e.g. "---x"
	}

	// Find the closing marker at the start of a later line.
	for j := after; j < len(runes); j++ {
		if runes[j] != '\n' || !hasMarkerAt(runes, j+1, frontmatterMarker) {
			continue
		}
		end := j + 1 + len(frontmatterMarker)
		// The marker must occupy the whole line.
		if end < len(runes) && runes[end] != '\n' && runes[end] != '\r' {
			continue
		}
		if end < len(runes) && runes[end] == '\r' {
			end++
		}
		if end < len(runes) && runes[end] == '\n' {
			out.WriteRune('\n')
			end++
		}
		return end
	}

	return len(runes) // Unterminated: still inside frontmatter at EOF
}

// dropStructuralLine discards whole lines that carry no content: a
// horizontal rule (3+ '-' only) and a table separator row (a line with
// both '|' and '-'). The trailing newline is dropped with the line.
func dropStructuralLine(runes []rune, i int) (int, bool) {
	end := i
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	line := runes[i:end]
	if isHorizontalRule(line) || isTableSeparator(line) {
		if end < len(runes) {
			end++ // Drop the newline too
		}
		return end, true
	}
	return i, false
}

// isHorizontalRule reports whether line consists solely of 3+ '-' runes.
func isHorizontalRule(line []rune) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' {
			return false
		}
	}
	return true
}

// isTableSeparator reports whether line contains both '|' and '-'.
// Lines with '|' but no '-' are left alone; their cell pipes remain as
// punctuation.
func isTableSeparator(line []rune) bool {
	hasPipe, hasDash := false, false
	for _, r := range line {
		switch r {
		case '|':
			hasPipe = true
		case '-':
			hasDash = true
		}
	}
	return hasPipe && hasDash
}

// stripLineMarkers discards line-leading structural markers: heading
// hashes with their following space run, quote markers, list bullets
// and list-item checkboxes. Quote markers are consumed in a loop so
// that a bullet nested under a quote is still recognized.
func stripLineMarkers(runes []rune, i int) int {
	// Heading markers: 1-6 '#' runes plus one following space run.
	if runes[i] == '#' {
		j := i
		for j < len(runes) && runes[j] == '#' {
			j++
		}
		if n := j - i; n >= 1 && n <= 6 {
			return skipSpaceRun(runes, j)
		}
		return i // 7+ hashes are not a heading
	}

	// Quote markers.
	for i < len(runes) && runes[i] == '>' {
		i++
		if i < len(runes) && runes[i] == ' ' {
			i++
		}
	}

	// Single-level list markers: '-', '*' or '+' followed by a space.
	if i+1 < len(runes) && (runes[i] == '-' || runes[i] == '*' || runes[i] == '+') && runes[i+1] == ' ' {
		i = skipSpaceRun(runes, i+1)
	}

	return skipCheckbox(runes, i)
}

// skipCheckbox discards a list-item checkbox marker ("[ ]", "[x]") and
// one following space run.
func skipCheckbox(runes []rune, i int) int {
	if i+2 < len(runes) && runes[i] == '[' && runes[i+2] == ']' {
		if c := runes[i+1]; c == ' ' || c == 'x' || c == 'X' {
			return skipSpaceRun(runes, i+3)
		}
	}
	return i
}

// skipSpaceRun advances past a run of spaces and tabs.
func skipSpaceRun(runes []rune, i int) int {
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
		i++
	}
	return i
}

// extractLinkText locates the matching ']' for a '[' at position i,
// confirms the following '(' and locates the matching ')'. It returns
// the bracketed text and the position after the closing parenthesis.
// First occurrence wins; there is no nested-bracket handling.
func extractLinkText(runes []rune, i int) ([]rune, int, bool) {
	close := -1
	for j := i + 1; j < len(runes); j++ {
		if runes[j] == ']' {
			close = j
			break
		}
	}
	if close < 0 || close+1 >= len(runes) || runes[close+1] != '(' {
		return nil, 0, false
	}
	for k := close + 2; k < len(runes); k++ {
		if runes[k] == ')' {
			return runes[i+1 : close], k + 1, true
		}
	}
	return nil, 0, false
}

// hasMarkerAt reports whether the marker string occurs at position i.
func hasMarkerAt(runes []rune, i int, marker string) bool {
	for _, m := range marker {
		if i >= len(runes) || runes[i] != m {
			return false
		}
		i++
	}
	return true
}

// atLineStart reports whether position i begins a line in the raw input.
func atLineStart(runes []rune, i int) bool {
	return i == 0 || runes[i-1] == '\n'
}
