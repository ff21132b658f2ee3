package text

import "testing"

// TestDetectDirection tests dominant-direction detection
func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"english", "Hello world", LTR},
		{"arabic", "مرحبا بالعالم", RTL},
		{"hebrew", "שלום עולם", RTL},
		{"numbers only", "123 456", Neutral},
		{"punctuation only", "... !?", Neutral},
		{"mixed mostly arabic", "نص عربي طويل with en", RTL},
		{"mixed mostly english", "long english text with كلمة", LTR},
		{"arabic with digits", "صفحة 12", RTL},
		{"cyrillic", "Привет мир", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestCharDirection tests single-rune classification
func TestCharDirection(t *testing.T) {
	tests := []struct {
		r    rune
		want Direction
	}{
		{'a', LTR},
		{'Z', LTR},
		{'ب', RTL}, // Arabic letter beh
		{'א', RTL}, // Hebrew letter alef
		{'ހ', RTL}, // Thaana letter haa
		{'5', Neutral},
		{' ', Neutral},
		{'!', Neutral},
		{'中', LTR},
	}

	for _, tt := range tests {
		if got := CharDirection(tt.r); got != tt.want {
			t.Errorf("CharDirection(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

// TestIsRTL tests the convenience predicate
func TestIsRTL(t *testing.T) {
	if !IsRTL("مرحبا") {
		t.Error("expected Arabic text to be RTL")
	}
	if IsRTL("hello") {
		t.Error("expected English text to not be RTL")
	}
}

// TestDirectionString tests the String method
func TestDirectionString(t *testing.T) {
	if LTR.String() != "LTR" || RTL.String() != "RTL" || Neutral.String() != "Neutral" {
		t.Error("unexpected Direction string values")
	}
	if Direction(42).String() != "Unknown" {
		t.Error("expected Unknown for out-of-range direction")
	}
}
