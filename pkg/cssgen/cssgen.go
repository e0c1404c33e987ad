// Package cssgen renders the breakpoint table as CSS media-query blocks.
//
// The output is consumed verbatim by the front end's stylesheet, so the
// format is part of the contract: one block per scale, largest scale first,
// byte-identical across runs for the same geometry.
package cssgen

import (
	"fmt"
	"io"
	"strings"

	"emuweb/pkg/layout"
)

// Render writes one media-query block per breakpoint of g to w, in
// descending scale order. An empty scale range writes nothing.
func Render(w io.Writer, g layout.Geometry) error {
	for _, bp := range g.Breakpoints() {
		if err := renderBlock(w, bp); err != nil {
			return err
		}
	}
	return nil
}

func renderBlock(w io.Writer, bp layout.Breakpoint) error {
	_, err := fmt.Fprintf(w,
		`@media (max-width: %dpx), (max-height: %dpx) {
    .diskLike {
         width: %dpx;
    }
    #screen {
        width: %dpx;
        height: %dpx;
    }
}
`,
		bp.MaxWidth, bp.MaxHeight, bp.DiskWidth, bp.ScreenWidth, bp.ScreenHeight)
	if err != nil {
		return fmt.Errorf("write media query block for scale %d: %w", bp.Scale, err)
	}
	return nil
}

// String renders the media-query blocks for g into a string.
func String(g layout.Geometry) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = Render(&b, g)
	return b.String()
}
