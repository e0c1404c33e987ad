package ui

import (
	"strings"
	"testing"

	"emuweb/pkg/layout"
)

func TestTable_PlainContainsAllRows(t *testing.T) {
	g := layout.DefaultGeometry()
	out := Table(g, false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one row per breakpoint.
	if want := g.Count() + 1; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, out)
	}
	if !strings.HasPrefix(lines[0], "SCALE") {
		t.Errorf("first line is not the header: %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "13") {
		t.Errorf("first row is not scale 13: %q", lines[1])
	}
	if !strings.Contains(out, "1328px") {
		t.Error("missing scale-13 max-width")
	}
	if !strings.Contains(out, "448x336") {
		t.Error("missing scale-7 screen size")
	}
}

func TestTable_PlainHasNoANSI(t *testing.T) {
	out := Table(layout.DefaultGeometry(), false)

	if strings.Contains(out, "\x1b[") {
		t.Error("plain table contains ANSI escape sequences")
	}
}

func TestTable_EmptyRange(t *testing.T) {
	g := layout.DefaultGeometry()
	g.MaxScale = g.MinScale

	out := Table(g, false)
	if !strings.Contains(out, "empty scale range") {
		t.Errorf("unexpected output for empty range: %q", out)
	}
}

func TestColumnWidths(t *testing.T) {
	header := []string{"A", "LONGHEADER"}
	rows := [][]string{{"wide-cell", "x"}}

	widths := columnWidths(header, rows)
	if widths[0] != len("wide-cell") {
		t.Errorf("widths[0] = %d, want %d", widths[0], len("wide-cell"))
	}
	if widths[1] != len("LONGHEADER") {
		t.Errorf("widths[1] = %d, want %d", widths[1], len("LONGHEADER"))
	}
}

func TestGuide_Plain(t *testing.T) {
	out, err := Guide(false)
	if err != nil {
		t.Fatalf("Guide failed: %v", err)
	}
	if !strings.Contains(out, "--export-bundle") {
		t.Error("guide missing bundle documentation")
	}
	if !strings.Contains(out, ".emuweb.yaml") {
		t.Error("guide missing config documentation")
	}
}
