package waraq

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal issues found during pagination.
type WarningCode int

const (
	// WarnMeasurement means the content could not be measured and the
	// pass was skipped; the previous geometry stands until the next
	// triggering event.
	WarnMeasurement WarningCode = iota

	// WarnGeometry means an invalid layout value was replaced with a
	// fallback.
	WarnGeometry

	// WarnOrphanedBreak means a manual break marker no longer resolved
	// inside the document and was pruned.
	WarnOrphanedBreak
)

// String returns the warning code name.
func (c WarningCode) String() string {
	switch c {
	case WarnMeasurement:
		return "measurement"
	case WarnGeometry:
		return "geometry"
	case WarnOrphanedBreak:
		return "orphaned-break"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue the engine recovered from.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
