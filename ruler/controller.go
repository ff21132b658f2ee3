package ruler

import (
	"time"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/schedule"
)

// Handle identifies a margin handle by its screen side.
type Handle int

const (
	HandleTop Handle = iota
	HandleBottom
	HandleLeft
	HandleRight
)

// String returns the handle's screen-side name.
func (h Handle) String() string {
	switch h {
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	default:
		return "right"
	}
}

// Config holds the tunable parameters of a Controller.
type Config struct {
	// Zoom is the display zoom factor used to convert pointer pixels
	// to millimetres. Non-positive means 1.
	Zoom float64

	// RTL selects right-to-left page direction, crossing the
	// horizontal handles over to their mirrored semantic margins.
	RTL bool

	// FrameInterval throttles pointer-move updates. Zero means one
	// display frame at 60fps.
	FrameInterval time.Duration

	// Now supplies the throttle clock; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Controller configuration for an RTL page at
// zoom 1.
func DefaultConfig() Config {
	return Config{Zoom: 1, RTL: true}
}

// drag is the state captured on pointer-down.
type drag struct {
	handle       Handle
	startPos     float64
	startMargins geometry.Margins
}

// Controller converts handle drags into clamped margin values. It is
// driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	zoom     float64
	rtl      bool
	throttle *schedule.FrameThrottle

	active bool
	drag   drag

	onChange func(geometry.Margins)
}

// New creates a Controller with default configuration.
func New() *Controller {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Controller with the given configuration.
func NewWithConfig(cfg Config) *Controller {
	zoom := cfg.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return &Controller{
		zoom:     zoom,
		rtl:      cfg.RTL,
		throttle: schedule.NewFrameThrottle(cfg.FrameInterval, cfg.Now),
	}
}

// OnMarginsChange registers the callback that receives each new margin
// set produced by a drag.
func (c *Controller) OnMarginsChange(fn func(geometry.Margins)) {
	c.onChange = fn
}

// SetZoom updates the zoom factor used for px-to-mm conversion.
// Non-positive values are ignored.
func (c *Controller) SetZoom(zoom float64) {
	if zoom > 0 {
		c.zoom = zoom
	}
}

// SetRTL updates the page direction.
func (c *Controller) SetRTL(rtl bool) { c.rtl = rtl }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.active }

// PointerDown begins a drag on the given handle. pos is the pointer
// coordinate along the handle's axis (x for left/right, y for
// top/bottom) and margins is the layout's current margin set.
func (c *Controller) PointerDown(h Handle, pos float64, margins geometry.Margins) {
	c.active = true
	c.drag = drag{handle: h, startPos: pos, startMargins: margins}
	c.throttle.Reset()
}

// PointerMove updates the drag with a new pointer position. Updates
// are frame-throttled: a move landing inside the current frame is held
// until the next move, [Controller.FrameTick], or release delivers or
// supersedes it. A move with no active drag is ignored.
func (c *Controller) PointerMove(pos float64) {
	if !c.active {
		return
	}
	margins := c.marginsAt(pos)
	c.throttle.Submit(func() { c.emit(margins) })
}

// FrameTick delivers a held pointer-move update on a host frame
// boundary. Hosts that draw on an animation-frame loop call this each
// frame during a drag, so a drag that pauses mid-frame still paints its
// last position without waiting for the next pointer event.
func (c *Controller) FrameTick() {
	if !c.active {
		return
	}
	c.throttle.Flush()
}

// PointerUp ends the drag, emitting the margins at the final pointer
// position.
func (c *Controller) PointerUp(pos float64) {
	if !c.active {
		return
	}
	margins := c.marginsAt(pos)
	c.active = false
	c.throttle.Reset()
	c.emit(margins)
}

// PointerCancel abandons the drag without emitting a final value, for
// forced cancellation such as window blur. Updates already emitted
// during the drag stand.
func (c *Controller) PointerCancel() {
	c.active = false
	c.throttle.Reset()
}

// marginsAt computes the clamped margin set for a pointer position.
func (c *Controller) marginsAt(pos float64) geometry.Margins {
	deltaMm := (pos - c.drag.startPos) / (geometry.PxPerMm * c.zoom)
	m := c.drag.startMargins

	switch c.drag.handle {
	case HandleTop:
		m.Top = geometry.ClampMargin(m.Top + deltaMm)
	case HandleBottom:
		// The bottom handle grows its margin by moving up.
		m.Bottom = geometry.ClampMargin(m.Bottom - deltaMm)
	case HandleLeft:
		// The screen-left handle owns the semantic right margin
		// under RTL.
		if c.rtl {
			m.Right = geometry.ClampMargin(m.Right + deltaMm)
		} else {
			m.Left = geometry.ClampMargin(m.Left + deltaMm)
		}
	case HandleRight:
		if c.rtl {
			m.Left = geometry.ClampMargin(m.Left - deltaMm)
		} else {
			m.Right = geometry.ClampMargin(m.Right - deltaMm)
		}
	}
	return m
}

func (c *Controller) emit(m geometry.Margins) {
	if c.onChange != nil {
		c.onChange(m)
	}
}
