package markup

import (
	"testing"
	"unicode/utf8"
)

// FuzzStrip fuzzes the stripper with arbitrary document text.
func FuzzStrip(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		"# heading\n\nbody",
		"---\nkey: value\n---\ncontent",
		"```\ncode\n```",
		"[text](url) and ![alt](img)",
		"<tag>inner</tag>",
		"$$\nmath\n$$",
		"- [x] item\n> quote\n|---|",
		"unterminated [bracket and <tag and ```fence",
		"混合 text with 漢字 and かな",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		out := Strip(raw)
		if !utf8.ValidString(out) && utf8.ValidString(raw) {
			t.Errorf("Strip produced invalid UTF-8 from valid input %q", raw)
		}
		if len([]rune(out)) > len([]rune(raw)) {
			t.Errorf("Strip grew input: %d runes in, %d runes out", len([]rune(raw)), len([]rune(out)))
		}
	})
}
