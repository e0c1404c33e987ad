// Package export writes the static front-end bundle and serves it locally
// for previewing.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"emuweb/pkg/config"
	"emuweb/pkg/cssgen"
	"emuweb/pkg/layout"
)

// indexTemplate is the page shell. The screen and disk markup matches the
// selectors the generated media queries target.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{TITLE}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<main class="stage">
    <canvas id="screen" width="{{SCREEN_W}}" height="{{SCREEN_H}}"></canvas>
    <aside class="library">
        <div class="diskLike"></div>
    </aside>
</main>
</body>
</html>
`

// baseCSS is the scale-independent styling. The generated media queries are
// appended below it, so later (smaller) breakpoints win as usual in CSS.
const baseCSS = `body {
    margin: 0;
    background: #111;
    color: #eee;
}
.stage {
    display: flex;
    align-items: center;
    justify-content: center;
    gap: 15px;
    min-height: 100vh;
}
#screen {
    border: 1px solid #444;
    image-rendering: pixelated;
    width: %dpx;
    height: %dpx;
}
.diskLike {
    border: 2px solid #444;
    border-radius: 50%%;
    margin: 0 5px;
    aspect-ratio: 1;
    width: %dpx;
}
`

// Meta describes a written bundle. It is an artifact for the viewer, not
// state the tool reads back.
type Meta struct {
	ScreenWidth  int       `json:"screen_width"`
	ScreenHeight int       `json:"screen_height"`
	MinScale     int       `json:"min_scale"`
	MaxScale     int       `json:"max_scale"`
	Breakpoints  int       `json:"breakpoints"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// WriteBundle writes index.html, style.css and data/meta.json for cfg into
// dir, creating it as needed.
func WriteBundle(dir string, cfg config.Config) error {
	g := cfg.Geometry()
	if err := g.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(renderIndex(cfg)), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(RenderStylesheet(g)), 0o644); err != nil {
		return fmt.Errorf("write style.css: %w", err)
	}

	meta := Meta{
		ScreenWidth:  g.ScreenWidth,
		ScreenHeight: g.ScreenHeight,
		MinScale:     g.MinScale,
		MaxScale:     g.MaxScale,
		Breakpoints:  g.Count(),
		GeneratedAt:  time.Now().UTC(),
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode meta.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "meta.json"), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write meta.json: %w", err)
	}
	return nil
}

// RenderStylesheet returns the full stylesheet: base rules sized for the
// largest scale, followed by the generated media-query blocks.
func RenderStylesheet(g layout.Geometry) string {
	var b strings.Builder
	top := g.MaxScale
	if top <= g.MinScale {
		top = g.MinScale
	}
	fmt.Fprintf(&b, baseCSS, top*g.ScreenWidth, top*g.ScreenHeight, g.DiskWidth(top))
	b.WriteString("\n")
	b.WriteString(cssgen.String(g))
	return b.String()
}

func renderIndex(cfg config.Config) string {
	g := cfg.Geometry()
	page := strings.ReplaceAll(indexTemplate, "{{TITLE}}", cfg.Bundle.Title)
	page = strings.ReplaceAll(page, "{{SCREEN_W}}", fmt.Sprint(g.ScreenWidth))
	page = strings.ReplaceAll(page, "{{SCREEN_H}}", fmt.Sprint(g.ScreenHeight))
	return page
}
