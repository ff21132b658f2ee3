package waraq

import (
	"time"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/measure"
	"github.com/waraq/waraq/nav"
	"github.com/waraq/waraq/paginate"
	"github.com/waraq/waraq/printout"
)

// Config holds the engine's tunable parameters. The zero value of any
// field falls back to its default.
type Config struct {
	// Layout is the initial page layout.
	Layout geometry.PageLayout

	// Zoom is the initial display zoom factor.
	Zoom float64

	// Debounce is the delay that coalesces content-change
	// notifications before repaginating.
	Debounce time.Duration

	// Measure configures the reference block measurer. Ignored when
	// Measurer is set.
	Measure measure.Config

	// Measurer overrides the content measurer entirely; the host
	// editor supplies one backed by its real rendering surface.
	Measurer measure.Measurer

	// Snap configures break-position snapping and the orphan/widow
	// policy.
	Snap paginate.SnapConfig

	// Sync configures the scroll/cursor synchronizer.
	Sync nav.Config

	// Export configures PDF export.
	Export printout.ExportConfig
}

// DefaultConfig returns the engine defaults: A4 portrait with 20mm
// margins at zoom 1, a 150ms content debounce, and the reference
// measurer.
func DefaultConfig() Config {
	return Config{
		Layout: geometry.DefaultPageLayout(),
		Zoom:   1,
		Snap:   paginate.DefaultSnapConfig(),
		Sync:   nav.DefaultConfig(),
		Export: printout.DefaultExportConfig(),
	}
}
