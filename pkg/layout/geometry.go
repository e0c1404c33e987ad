// Package layout computes the responsive breakpoint table for the emulator
// front end: a fixed-aspect simulated screen plus a disk-shaped library
// element, scaled by an integer zoom factor.
package layout

import "fmt"

// Fixed chrome allowances, in pixels. These mirror the front end's CSS:
// they never vary with scale.
const (
	// ScreenBorderPx is the screen's border (1px each side).
	ScreenBorderPx = 2

	// SlotRailPx is the width of the disk slot rail next to the screen.
	SlotRailPx = 41

	// GapAllowancePx covers the flex gaps around the screen and library.
	GapAllowancePx = 30

	// DiskBorderPx is the disk element's border (2px each side).
	DiskBorderPx = 4

	// DiskMarginPx is the disk element's horizontal margins (2 sides, 2
	// edges, 5px each).
	DiskMarginPx = 2 * 2 * 5
)

// Geometry holds the abstract screen dimensions and the scale range the
// breakpoint table covers. Scales run over [MinScale, MaxScale).
type Geometry struct {
	ScreenWidth  int
	ScreenHeight int
	MinScale     int
	MaxScale     int
}

// DefaultGeometry returns the shipped front end's geometry: a 64x48 unit
// screen rendered at integer scales 7 through 13.
func DefaultGeometry() Geometry {
	return Geometry{
		ScreenWidth:  64,
		ScreenHeight: 48,
		MinScale:     7,
		MaxScale:     14,
	}
}

// DiskWidth returns the pixel width of the disk element at the given scale.
//
// The steps must stay in this exact order because each division floors:
// subtract the fixed chrome, halve, snap down past the nearest multiple of
// ten, add one.
func (g Geometry) DiskWidth(scale int) int {
	w := g.ScreenWidth*scale - SlotRailPx - DiskBorderPx - DiskMarginPx
	w = w / 2
	w = (w-10)/10*10 + 1
	return w
}

// Breakpoint is one row of the responsive table. MaxWidth and MaxHeight are
// the media-query thresholds (already offset by -1 for the max-* boundary);
// the remaining fields are the pixel sizes the query applies.
type Breakpoint struct {
	Scale        int
	MaxWidth     int
	MaxHeight    int
	DiskWidth    int
	ScreenWidth  int
	ScreenHeight int
}

// At returns the breakpoint for a single scale. The thresholds are computed
// from the next scale up: the query fires once the viewport can no longer
// hold the larger rendering.
func (g Geometry) At(scale int) Breakpoint {
	next := scale + 1
	width := g.ScreenWidth*next + ScreenBorderPx
	width += g.DiskWidth(next)
	width += GapAllowancePx
	height := g.ScreenHeight*next + ScreenBorderPx
	height += SlotRailPx
	height += GapAllowancePx

	return Breakpoint{
		Scale:        scale,
		MaxWidth:     width - 1,
		MaxHeight:    height - 1,
		DiskWidth:    g.DiskWidth(scale),
		ScreenWidth:  scale * g.ScreenWidth,
		ScreenHeight: scale * g.ScreenHeight,
	}
}

// Breakpoints returns one breakpoint per scale in [MinScale, MaxScale),
// largest scale first. Empty when the range is empty.
func (g Geometry) Breakpoints() []Breakpoint {
	if g.MaxScale <= g.MinScale {
		return nil
	}
	bps := make([]Breakpoint, 0, g.MaxScale-g.MinScale)
	for scale := g.MaxScale - 1; scale >= g.MinScale; scale-- {
		bps = append(bps, g.At(scale))
	}
	return bps
}

// Count returns the number of breakpoints the geometry produces.
func (g Geometry) Count() int {
	if g.MaxScale <= g.MinScale {
		return 0
	}
	return g.MaxScale - g.MinScale
}

// Validate checks that the geometry produces a well-defined table. Beyond
// positivity, it requires the disk formula's first step to stay positive at
// the smallest scale used, which keeps every intermediate value non-negative
// and makes Go's truncating division agree with floor division.
func (g Geometry) Validate() error {
	if g.ScreenWidth <= 0 || g.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", g.ScreenWidth, g.ScreenHeight)
	}
	if g.MinScale <= 0 {
		return fmt.Errorf("min scale must be positive, got %d", g.MinScale)
	}
	if g.MaxScale < g.MinScale {
		return fmt.Errorf("max scale %d is below min scale %d", g.MaxScale, g.MinScale)
	}
	chrome := SlotRailPx + DiskBorderPx + DiskMarginPx
	if g.MaxScale > g.MinScale && g.ScreenWidth*g.MinScale <= chrome {
		return fmt.Errorf("screen width %d at scale %d leaves no room for the disk element", g.ScreenWidth, g.MinScale)
	}
	return nil
}
