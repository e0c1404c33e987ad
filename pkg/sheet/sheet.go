// Package sheet renders the breakpoint table as an SVG contact sheet: one
// panel per scale showing the screen and disk element at true pixel size.
package sheet

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"emuweb/pkg/layout"
)

const (
	panelMargin = 20
	labelHeight = 24
)

const (
	screenStyle = "fill:#111111;stroke:#444444;stroke-width:1"
	diskStyle   = "fill:none;stroke:#444444;stroke-width:2"
	labelStyle  = "font-family:monospace;font-size:14px;fill:#333333"
)

// Render writes the SVG sheet for g to w. Panels are stacked vertically,
// largest scale first, matching the order of the generated media queries.
func Render(w io.Writer, g layout.Geometry) error {
	bps := g.Breakpoints()

	width := 2 * panelMargin
	height := panelMargin
	for _, bp := range bps {
		panelW := 2*panelMargin + bp.ScreenWidth + panelMargin + bp.DiskWidth
		if panelW > width {
			width = panelW
		}
		height += labelHeight + bp.ScreenHeight + panelMargin
	}

	canvas := svg.New(w)
	canvas.Start(width, height)

	y := panelMargin
	for _, bp := range bps {
		canvas.Text(panelMargin, y+16,
			fmt.Sprintf("scale %d: <=%dpx wide, <=%dpx tall", bp.Scale, bp.MaxWidth, bp.MaxHeight),
			labelStyle)
		y += labelHeight

		canvas.Rect(panelMargin, y, bp.ScreenWidth, bp.ScreenHeight, screenStyle)

		// Disk sits to the right of the screen, vertically centered.
		r := bp.DiskWidth / 2
		cx := panelMargin + bp.ScreenWidth + panelMargin + r
		cy := y + bp.ScreenHeight/2
		canvas.Circle(cx, cy, r, diskStyle)

		y += bp.ScreenHeight + panelMargin
	}

	canvas.End()
	return nil
}

// WriteFile renders the sheet for g into the file at path.
func WriteFile(path string, g layout.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", path, err)
	}
	if err := Render(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write sheet %s: %w", path, err)
	}
	return nil
}
