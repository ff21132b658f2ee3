package geometry

import "math"

// Conversion constants. Pixel conversion is pinned to 96 DPI so the same
// layout resolves to the same pixel geometry everywhere.
const (
	PxPerMm   = 3.7795275591 // 96 DPI / 25.4 mm per inch
	MmPerInch = 25.4
)

// Margin and custom-size bounds, in millimeters.
const (
	MinMarginMm = 0.0
	MaxMarginMm = 50.0
	MaxMarginIn = 2.0

	MinCustomSizeMm = 50.0
	MaxCustomSizeMm = 2000.0
)

// DisplayUnit selects the unit shown in page-setup UI. The stored value is
// always millimeters; the display unit affects only rounding for presentation.
type DisplayUnit int

const (
	UnitMillimeters DisplayUnit = iota
	UnitInches
)

// String returns "mm" or "in".
func (u DisplayUnit) String() string {
	switch u {
	case UnitInches:
		return "in"
	default:
		return "mm"
	}
}

// MmToPx converts millimeters to pixels at the given zoom factor.
// A non-positive or non-finite zoom is treated as 1.0.
func MmToPx(mm, zoom float64) float64 {
	return mm * PxPerMm * sanitizeZoom(zoom)
}

// PxToMm converts pixels back to millimeters at the given zoom factor.
func PxToMm(px, zoom float64) float64 {
	return px / (PxPerMm * sanitizeZoom(zoom))
}

// MmToInches converts millimeters to inches without rounding.
func MmToInches(mm float64) float64 {
	return mm / MmPerInch
}

// InchesToMm converts inches to millimeters without rounding.
func InchesToMm(in float64) float64 {
	return in * MmPerInch
}

// RoundForDisplay rounds a value already expressed in the display unit:
// inches to 3 decimal places, millimeters to the nearest integer. Callers keep
// the unrounded millimeter value; this is presentation only.
func RoundForDisplay(value float64, unit DisplayUnit) float64 {
	if unit == UnitInches {
		return math.Round(value*1000) / 1000
	}
	return math.Round(value)
}

// FormatMargin converts a stored millimeter margin to the display unit and
// rounds it for presentation.
func FormatMargin(mm float64, unit DisplayUnit) float64 {
	if unit == UnitInches {
		return RoundForDisplay(MmToInches(mm), UnitInches)
	}
	return RoundForDisplay(mm, UnitMillimeters)
}

// ClampMargin clamps a millimeter margin to the allowed [0, 50mm] range.
// Non-finite input clamps to zero.
func ClampMargin(mm float64) float64 {
	if !isFinite(mm) || mm < MinMarginMm {
		return MinMarginMm
	}
	if mm > MaxMarginMm {
		return MaxMarginMm
	}
	return mm
}

// ClampCustomSize clamps a custom page dimension to the printable range.
// Non-finite input falls back to the A4 portrait width.
func ClampCustomSize(mm float64) float64 {
	if !isFinite(mm) {
		return a4WidthMm
	}
	if mm < MinCustomSizeMm {
		return MinCustomSizeMm
	}
	if mm > MaxCustomSizeMm {
		return MaxCustomSizeMm
	}
	return mm
}

func sanitizeZoom(zoom float64) float64 {
	if !isFinite(zoom) || zoom <= 0 {
		return 1.0
	}
	return zoom
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
