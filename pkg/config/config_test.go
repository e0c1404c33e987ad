package config

import (
	"os"
	"path/filepath"
	"testing"

	"emuweb/pkg/layout"
)

func TestDefault_MatchesShippedGeometry(t *testing.T) {
	cfg := Default()

	if cfg.Geometry() != layout.DefaultGeometry() {
		t.Errorf("Default().Geometry() = %+v, want %+v", cfg.Geometry(), layout.DefaultGeometry())
	}
	if cfg.Bundle.Dir != "web" {
		t.Errorf("Bundle.Dir = %q, want \"web\"", cfg.Bundle.Dir)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tmp := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(orig)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}
	if cfg.Geometry() != layout.DefaultGeometry() {
		t.Errorf("expected default geometry, got %+v", cfg.Geometry())
	}
}

func TestLoad_MissingExplicitFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emuweb.yaml")
	content := `screen:
  width: 32
  height: 24
scale:
  min: 2
  max: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	g := cfg.Geometry()
	if g.ScreenWidth != 32 || g.ScreenHeight != 24 || g.MinScale != 2 || g.MaxScale != 5 {
		t.Errorf("geometry = %+v", g)
	}
	// Unset sections keep their defaults.
	if cfg.Bundle.Dir != "web" {
		t.Errorf("Bundle.Dir = %q, want \"web\"", cfg.Bundle.Dir)
	}
}

func TestLoad_InvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emuweb.yaml")
	content := `screen:
  width: -1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for negative screen width")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emuweb.yaml")
	if err := os.WriteFile(path, []byte("screen: [not: a mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emuweb.yaml")

	cfg := Default()
	cfg.Screen.Width = 80
	cfg.Scale.Max = 10
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Geometry() != cfg.Geometry() {
		t.Errorf("round trip geometry = %+v, want %+v", loaded.Geometry(), cfg.Geometry())
	}
}

func TestLoad_WidthValidatedAgainstMinScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emuweb.yaml")
	// 8px units at scale 1 cannot hold the disk chrome.
	content := `screen:
  width: 8
  height: 8
scale:
  min: 1
  max: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for geometry too narrow for the disk element")
	}
}
