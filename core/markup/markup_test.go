package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "level one heading",
			input:    "# Title",
			expected: "Title",
		},
		{
			name:     "level six heading",
			input:    "###### Deep",
			expected: "Deep",
		},
		{
			name:     "seven hashes is not a heading",
			input:    "####### Not",
			expected: "####### Not",
		},
		{
			name:     "hash mid-line survives",
			input:    "issue #42",
			expected: "issue #42",
		},
		{
			name:     "space run after hashes is discarded",
			input:    "##   Spaced",
			expected: "Spaced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripLineMarkers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "quote marker",
			input:    "> quoted text",
			expected: "quoted text",
		},
		{
			name:     "nested quote markers",
			input:    ">> deep quote",
			expected: "deep quote",
		},
		{
			name:     "dash list item",
			input:    "- first\n- second",
			expected: "first\nsecond",
		},
		{
			name:     "star and plus list items",
			input:    "* one\n+ two",
			expected: "one\ntwo",
		},
		{
			name:     "star without space is emphasis not a list",
			input:    "*bold* start",
			expected: "*bold* start",
		},
		{
			name:     "unchecked checkbox",
			input:    "- [ ] write tests",
			expected: "write tests",
		},
		{
			name:     "checked checkbox",
			input:    "- [x] ship it",
			expected: "ship it",
		},
		{
			name:     "bullet under quote",
			input:    "> - nested item",
			expected: "nested item",
		},
		{
			name:     "horizontal rule dropped",
			input:    "above\n---\nbelow",
			expected: "above\nbelow",
		},
		{
			name:     "two dashes are not a rule",
			input:    "a\n--\nb",
			expected: "a\n--\nb",
		},
		{
			name:     "table separator row dropped",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			expected: "| a | b |\n| 1 | 2 |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripVerbatimRegions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fenced code passes through with markers",
			input:    "```\n# not a heading\n```",
			expected: "```\n# not a heading\n```",
		},
		{
			name:     "unterminated fence runs to end of input",
			input:    "```\n- still code",
			expected: "```\n- still code",
		},
		{
			name:     "inline span keeps backticks",
			input:    "run `go version` now",
			expected: "run `go version` now",
		},
		{
			name:     "inline math keeps delimiters",
			input:    "area is $x^2$ here",
			expected: "area is $x^2$ here",
		},
		{
			name:     "block math keeps double delimiters",
			input:    "$$\nE = mc^2\n$$",
			expected: "$$\nE = mc^2\n$$",
		},
		{
			name:     "markers inside fence are not interpreted",
			input:    "```\n[link](x) <b>\n```",
			expected: "```\n[link](x) <b>\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripTagsAndLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tag content discarded",
			input:    "a<span>b</span>c",
			expected: "abc",
		},
		{
			name:     "unterminated tag consumes to end",
			input:    "before <div class",
			expected: "before",
		},
		{
			name:     "link keeps text drops target",
			input:    "see [the docs](https://example.com) here",
			expected: "see the docs here",
		},
		{
			name:     "image keeps alt text",
			input:    "![diagram](img.png)",
			expected: "diagram",
		},
		{
			name:     "bare bracket is literal",
			input:    "a [b c",
			expected: "a [b c",
		},
		{
			name:     "bracket pair without parens is literal",
			input:    "array[0] = 1",
			expected: "array[0] = 1",
		},
		{
			name:     "bang without bracket is literal",
			input:    "wow! done",
			expected: "wow! done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "frontmatter block discarded",
			input:    "---\ntitle: Post\ntags: [a, b]\n---\nBody text",
			expected: "Body text",
		},
		{
			name:     "unterminated frontmatter consumes everything",
			input:    "---\ntitle: Post\nBody text",
			expected: "",
		},
		{
			name:     "marker not at byte zero is a rule not frontmatter",
			input:    "intro\n---\nBody",
			expected: "intro\nBody",
		},
		{
			name:     "dashes glued to text are plain content",
			input:    "---x\nBody",
			expected: "---x\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "horizontal whitespace runs collapse",
			input:    "a  \t  b",
			expected: "a b",
		},
		{
			name:     "blank line runs collapse to one blank line",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n\nhello\n\n  ",
			expected: "hello",
		},
		{
			name:     "crlf line endings become lf",
			input:    "a\r\nb",
			expected: "a\nb",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only input",
			input:    "  \n\t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStripPlainTextIsStable(t *testing.T) {
	inputs := []string{
		"Hello world, this is plain prose.",
		"Title\n\nHello **world**, 123!",
		"multi\nline\nplain\ntext",
		"unicode 世界 and かな survive",
	}

	for _, input := range inputs {
		once := Strip(input)
		assert.Equal(t, once, Strip(once), "stripping stripped text should be a no-op for %q", input)
	}
}

func TestStripDocument(t *testing.T) {
	input := "---\n" +
		"title: Daily note\n" +
		"---\n" +
		"# Morning pages\n" +
		"\n" +
		"Wrote about [the trip](notes/trip.md) today.\n" +
		"\n" +
		"- [x] draft intro\n" +
		"- [ ] revise outline\n" +
		"\n" +
		"> keep it simple\n" +
		"\n" +
		"```\nfunc main() {}\n```\n"

	expected := "Morning pages\n" +
		"\n" +
		"Wrote about the trip today.\n" +
		"\n" +
		"draft intro\n" +
		"revise outline\n" +
		"\n" +
		"keep it simple\n" +
		"\n" +
		"```\nfunc main() {}\n```"

	assert.Equal(t, expected, Strip(input))
}
