package core

import (
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// Logographic Unicode block boundaries.
const (
	cjkUnifiedStart    = 0x4E00
	cjkUnifiedEnd      = 0x9FFF
	cjkExtensionAStart = 0x3400
	cjkExtensionAEnd   = 0x4DBF
	cjkCompatStart     = 0xF900
	cjkCompatEnd       = 0xFAFF
	kanaStart          = 0x3040
	kanaEnd            = 0x30FF

	fullWidthZero = 0xFF10
	fullWidthNine = 0xFF19
)

// classify counts the characters of stripped content text by category
// in a single linear scan. Each character is visited exactly once; the
// alphabetic branch advances the index past a whole letter run. The
// decision order resolves overlapping ranges: digits and letters first,
// then logographic scripts, then punctuation, then whitespace. A match
// for a disabled category leaves the character uncounted rather than
// falling through to a later test.
func classify(text string, cfg *contract.Config) schema.CountRecord {
	var rec schema.CountRecord
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isDigitRune(r):
			if cfg.TrackDigits {
				rec.Digits++
			}

		case isASCIILetter(r):
			end := i + 1
			for end < len(runes) && isASCIILetter(runes[end]) {
				end++
			}
			run := runes[i:end]
			i = end - 1
			if !cfg.TrackAlphabetic {
				continue
			}
			if len(run) == 1 {
				// Single letters count as characters, never as words.
				rec.Alphabetic++
				continue
			}
			if isRomanNumeralRun(run) {
				// Bare numeral tokens like "III" or "xiv" would
				// inflate prose counts; skip the whole run.
				continue
			}
			rec.Alphabetic += len(run)
			if cfg.WordCount {
				rec.Words++
			}

		case isLogographic(r):
			if cfg.TrackLogographic {
				rec.Logographic++
			}

		case isPunctuationRune(r):
			if cfg.TrackPunctuation {
				rec.Punctuation++
			}

		case isWhitespaceRune(r):
			if cfg.TrackWhitespace {
				rec.Whitespace++
			}
		}
	}

	return rec
}

func isDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= fullWidthZero && r <= fullWidthNine)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLogographic(r rune) bool {
	switch {
	case r >= cjkUnifiedStart && r <= cjkUnifiedEnd:
		return true
	case r >= cjkExtensionAStart && r <= cjkExtensionAEnd:
		return true
	case r >= cjkCompatStart && r <= cjkCompatEnd:
		return true
	case r >= kanaStart && r <= kanaEnd:
		return true
	}
	return false
}

// isWordRune matches the characters that can never be punctuation:
// ASCII alphanumerics and underscore.
func isWordRune(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9') || r == '_'
}

// isPunctuationRune treats any rune that is not a word character, not
// whitespace and not logographic as punctuation. Logographic runes are
// excluded by the caller's decision order.
func isPunctuationRune(r rune) bool {
	return !isWordRune(r) && !isWhitespaceRune(r)
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isRomanNumeralRun reports whether the run is composed entirely of
// Roman numeral letters, compared case-insensitively.
func isRomanNumeralRun(run []rune) bool {
	for _, r := range run {
		switch r {
		case 'I', 'V', 'X', 'L', 'C', 'D', 'M',
			'i', 'v', 'x', 'l', 'c', 'd', 'm':
		default:
			return false
		}
	}
	return true
}
