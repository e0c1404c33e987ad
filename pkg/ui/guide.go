package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const guideMarkdown = `# emuweb

Build tool for the emulator front end. It derives the responsive breakpoint
table from the screen geometry and emits it as CSS media queries.

## Everyday use

- ` + "`emuweb`" + ` — print the media-query CSS to stdout
- ` + "`emuweb --table`" + ` — show the breakpoint table
- ` + "`emuweb --inspect`" + ` — tune the scale range interactively
- ` + "`emuweb --copy`" + ` — put the generated CSS on the clipboard

## Bundles

- ` + "`emuweb --export-bundle web`" + ` — write index.html, style.css and
  data/meta.json
- ` + "`emuweb --preview web`" + ` — serve the bundle locally with no-cache
  headers
- ` + "`emuweb --preview web --watch`" + ` — also rebuild when .emuweb.yaml
  changes
- ` + "`emuweb --sheet layout.svg`" + ` — render one SVG panel per breakpoint

## Configuration

Geometry defaults to the shipped front end (64x48 units, scales 7-13).
Override it in ` + "`.emuweb.yaml`" + `:

    screen:
      width: 64
      height: 48
    scale:
      min: 7
      max: 14

` + "`emuweb --init`" + ` writes this file interactively.
`

// Guide renders the usage guide for the terminal. styled selects ANSI
// rendering; plain output is the raw markdown.
func Guide(styled bool) (string, error) {
	if !styled {
		return guideMarkdown, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create guide renderer: %w", err)
	}
	out, err := r.Render(guideMarkdown)
	if err != nil {
		return "", fmt.Errorf("render guide: %w", err)
	}
	return out, nil
}
