package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// stockCSS is the breakpoint table for the shipped geometry (64x48 units,
// scales 7-13). A bare invocation must reproduce it byte for byte.
const stockCSS = `@media (max-width: 1328px), (max-height: 744px) {
    .diskLike {
         width: 371px;
    }
    #screen {
        width: 832px;
        height: 624px;
    }
}
@media (max-width: 1234px), (max-height: 696px) {
    .diskLike {
         width: 341px;
    }
    #screen {
        width: 768px;
        height: 576px;
    }
}
@media (max-width: 1140px), (max-height: 648px) {
    .diskLike {
         width: 301px;
    }
    #screen {
        width: 704px;
        height: 528px;
    }
}
@media (max-width: 1036px), (max-height: 600px) {
    .diskLike {
         width: 271px;
    }
    #screen {
        width: 640px;
        height: 480px;
    }
}
@media (max-width: 942px), (max-height: 552px) {
    .diskLike {
         width: 241px;
    }
    #screen {
        width: 576px;
        height: 432px;
    }
}
@media (max-width: 848px), (max-height: 504px) {
    .diskLike {
         width: 211px;
    }
    #screen {
        width: 512px;
        height: 384px;
    }
}
@media (max-width: 754px), (max-height: 456px) {
    .diskLike {
         width: 181px;
    }
    #screen {
        width: 448px;
        height: 336px;
    }
}
`

func TestGenerate_StockOutput(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin)
	cmd.Dir = t.TempDir() // no config file in scope
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("emuweb failed: %v", err)
	}

	if string(out) != stockCSS {
		t.Errorf("stdout does not match the stock breakpoint CSS:\n%s", out)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	run := func() string {
		cmd := exec.Command(bin)
		cmd.Dir = dir
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("emuweb failed: %v", err)
		}
		return string(out)
	}

	first := run()
	if again := run(); again != first {
		t.Error("repeated runs produced different output")
	}
}

func TestGenerate_ConfigOverride(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	configYAML := `scale:
  min: 7
  max: 7
`
	if err := os.WriteFile(filepath.Join(dir, ".emuweb.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := exec.Command(bin)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("emuweb failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output for empty scale range, got:\n%s", out)
	}
}

func TestGenerate_InvalidConfigFails(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, ".emuweb.yaml"), []byte("screen:\n  width: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := exec.Command(bin)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure for invalid config, got:\n%s", out)
	}
	if !strings.Contains(string(out), "Error:") {
		t.Errorf("expected error message on stderr, got:\n%s", out)
	}
}

func TestExportBundle_Artifacts(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	bundleDir := filepath.Join(dir, "web")

	cmd := exec.Command(bin, "--export-bundle", bundleDir)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("--export-bundle failed: %v\n%s", err, out)
	}

	for _, p := range []string{
		filepath.Join(bundleDir, "index.html"),
		filepath.Join(bundleDir, "style.css"),
		filepath.Join(bundleDir, "data", "meta.json"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing bundle artifact %s: %v", p, err)
		}
	}

	css, err := os.ReadFile(filepath.Join(bundleDir, "style.css"))
	if err != nil {
		t.Fatalf("read style.css: %v", err)
	}
	if !strings.Contains(string(css), stockCSS) {
		t.Error("bundle stylesheet does not contain the stock media queries")
	}
}

func TestTable_PlainWhenPiped(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "--table")
	cmd.Dir = t.TempDir()
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("--table failed: %v", err)
	}

	if strings.Contains(string(out), "\x1b[") {
		t.Error("piped table output contains ANSI escape sequences")
	}
	if !strings.Contains(string(out), "SCALE") {
		t.Errorf("table output missing header:\n%s", out)
	}
}

func TestSheet_WritesSVG(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "layout.svg")

	cmd := exec.Command(bin, "--sheet", svgPath)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("--sheet failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("sheet output is not SVG")
	}
}

func TestVersion(t *testing.T) {
	bin := buildBinary(t)

	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.HasPrefix(string(out), "emuweb version") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "emuweb")

	cmd := exec.Command("go", "build", "-o", bin, "emuweb/cmd/emuweb")
	cmd.Dir = findRepoRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed: %v\n%s", err, out)
	}
	return bin
}

func findRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found above test directory")
		}
		dir = parent
	}
}
