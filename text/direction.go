// Package text provides writing-direction detection for document content.
//
// Direction drives the geometry package's RTL margin inversion: a document
// whose dominant direction is RTL anchors its content to the right page edge,
// which swaps the visual meaning of the left and right margins.
package text

import "golang.org/x/text/unicode/bidi"

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, Syriac, Thaana, N'Ko, etc.
	RTL
	// Neutral for numbers, punctuation, and whitespace.
	Neutral
)

// String returns "LTR", "RTL", or "Neutral".
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// CharDirection returns the inherent direction of a single rune based on its
// Unicode bidirectional class. Strong left-to-right classes map to LTR,
// strong right-to-left classes (including Arabic letters) map to RTL, and
// everything else (digits, punctuation, whitespace, symbols) is Neutral.
func CharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// DetectDirection analyzes a string and returns its dominant direction by
// counting strong directional characters. Ties favor LTR; a string with no
// strong characters is Neutral.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0
	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// IsRTL reports whether the dominant direction of text is right-to-left.
func IsRTL(text string) bool {
	return DetectDirection(text) == RTL
}
