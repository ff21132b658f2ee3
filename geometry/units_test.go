package geometry

import (
	"math"
	"testing"
)

// TestMmToPxKnownValues tests the fixed 96 DPI conversion constant
func TestMmToPxKnownValues(t *testing.T) {
	tests := []struct {
		name string
		mm   float64
		zoom float64
		want float64
	}{
		{"one mm at 100%", 1, 1.0, 3.7795275591},
		{"A4 width at 100%", 210, 1.0, 793.7007874},
		{"A4 height at 100%", 297, 1.0, 1122.5196851},
		{"one mm at 200%", 1, 2.0, 7.5590551182},
		{"one mm at 50%", 1, 0.5, 1.8897637796},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MmToPx(tt.mm, tt.zoom)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("MmToPx(%v, %v) = %v, want %v", tt.mm, tt.zoom, got, tt.want)
			}
		})
	}
}

// TestPxMmRoundTrip verifies PxToMm(MmToPx(x, z), z) ~= x for several zooms
func TestPxMmRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 1, 12.7, 20, 50, 210, 297}
	zooms := []float64{0.25, 0.5, 0.75, 1, 1.5, 2, 4}

	for _, z := range zooms {
		for _, v := range values {
			got := PxToMm(MmToPx(v, z), z)
			if math.Abs(got-v) > 1e-9 {
				t.Errorf("round trip %vmm at zoom %v = %v", v, z, got)
			}
		}
	}
}

// TestBadZoomFallsBack tests that invalid zoom values behave as 1.0
func TestBadZoomFallsBack(t *testing.T) {
	zooms := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, z := range zooms {
		got := MmToPx(10, z)
		want := MmToPx(10, 1.0)
		if got != want {
			t.Errorf("MmToPx(10, %v) = %v, want %v", z, got, want)
		}
	}
}

// TestInchConversion tests mm/inch conversion and display rounding
func TestInchConversion(t *testing.T) {
	if got := MmToInches(25.4); got != 1.0 {
		t.Errorf("MmToInches(25.4) = %v, want 1", got)
	}
	if got := InchesToMm(2); got != 50.8 {
		t.Errorf("InchesToMm(2) = %v, want 50.8", got)
	}

	// Display rounding must not be applied to the stored value path.
	stored := 20.0
	display := FormatMargin(stored, UnitInches)
	if display != 0.787 {
		t.Errorf("FormatMargin(20, inches) = %v, want 0.787", display)
	}
	// Converting without rounding keeps precision.
	if got := MmToInches(stored); math.Abs(got-0.78740157) > 1e-6 {
		t.Errorf("MmToInches(20) = %v", got)
	}

	if got := FormatMargin(20.4, UnitMillimeters); got != 20 {
		t.Errorf("FormatMargin(20.4, mm) = %v, want 20", got)
	}
}

// TestClampMargin tests margin clamping including non-finite input
func TestClampMargin(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{25, 25},
		{50, 50},
		{51, 50},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		if got := ClampMargin(tt.in); got != tt.want {
			t.Errorf("ClampMargin(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestClampCustomSize tests the printable range clamp
func TestClampCustomSize(t *testing.T) {
	if got := ClampCustomSize(10); got != MinCustomSizeMm {
		t.Errorf("ClampCustomSize(10) = %v, want %v", got, MinCustomSizeMm)
	}
	if got := ClampCustomSize(5000); got != MaxCustomSizeMm {
		t.Errorf("ClampCustomSize(5000) = %v, want %v", got, MaxCustomSizeMm)
	}
	if got := ClampCustomSize(math.NaN()); got != 210 {
		t.Errorf("ClampCustomSize(NaN) = %v, want 210", got)
	}
}
