package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"emuweb/pkg/config"
	"emuweb/pkg/cssgen"
	"emuweb/pkg/export"
	"emuweb/pkg/sheet"
	"emuweb/pkg/ui"
	"emuweb/pkg/watcher"
)

const version = "0.2.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Path to .emuweb.yaml (default: ./.emuweb.yaml)")
	initConfig := flag.Bool("init", false, "Write .emuweb.yaml interactively")
	guide := flag.Bool("guide", false, "Show the usage guide")
	table := flag.Bool("table", false, "Print the breakpoint table instead of CSS")
	inspect := flag.Bool("inspect", false, "Inspect the breakpoint table interactively")
	copyCSS := flag.Bool("copy", false, "Copy the generated CSS to the clipboard")
	sheetPath := flag.String("sheet", "", "Write an SVG layout sheet to the given file")
	bundleDir := flag.String("export-bundle", "", "Write the front-end bundle to the given directory")
	previewDir := flag.String("preview", "", "Serve the bundle in the given directory locally")
	watch := flag.Bool("watch", false, "With --preview: rebuild the bundle when the config changes")
	flag.Parse()

	if *help {
		fmt.Println("Usage: emuweb [options]")
		fmt.Println("\nGenerates responsive breakpoint CSS for the emulator front end.")
		fmt.Println("With no options, prints the media-query blocks to stdout.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("emuweb version %s\n", version)
		os.Exit(0)
	}

	if *initConfig {
		if err := runInit(*configPath); err != nil {
			fatal(err)
		}
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	geo := cfg.Geometry()

	switch {
	case *guide:
		out, err := ui.Guide(stdoutIsTerminal())
		if err != nil {
			fatal(err)
		}
		fmt.Print(out)

	case *inspect:
		p := tea.NewProgram(ui.NewInspectModel(geo), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal(fmt.Errorf("run inspect: %w", err))
		}

	case *table:
		fmt.Print(ui.Table(geo, stdoutIsTerminal()))

	case *sheetPath != "":
		if err := sheet.WriteFile(*sheetPath, geo); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d panels)\n", *sheetPath, geo.Count())

	case *bundleDir != "":
		if err := export.WriteBundle(*bundleDir, cfg); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote bundle to %s (%d breakpoints)\n", *bundleDir, geo.Count())

	case *previewDir != "":
		if err := runPreview(*previewDir, *configPath, *watch); err != nil {
			fatal(err)
		}

	case *copyCSS:
		css := cssgen.String(geo)
		if err := clipboard.WriteAll(css); err != nil {
			fatal(fmt.Errorf("copy to clipboard: %w", err))
		}
		fmt.Fprintf(os.Stderr, "Copied %d media-query blocks to the clipboard\n", geo.Count())

	default:
		if err := cssgen.Render(os.Stdout, geo); err != nil {
			fatal(err)
		}
	}
}

// runPreview serves dir locally; with watch it also rebuilds the bundle when
// the config file changes.
func runPreview(dir, configPath string, watch bool) error {
	port, err := export.FindAvailablePort(export.PreviewPortRangeStart, export.PreviewPortRangeEnd)
	if err != nil {
		return fmt.Errorf("could not find available port: %w", err)
	}
	server := export.NewPreviewServer(dir, port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchPath := configPath
	if watchPath == "" {
		watchPath = config.DefaultPath
	}

	fmt.Fprintf(os.Stderr, "Preview server running at %s\n", server.URL())
	fmt.Fprintf(os.Stderr, "Serving: %s\n", dir)
	if watch {
		fmt.Fprintf(os.Stderr, "Watching: %s\n", watchPath)
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop")

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		return server.Stop()
	})

	if watch {
		w := watcher.New(watchPath, 0, func() {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Config error, keeping last bundle: %v\n", err)
				return
			}
			if err := export.WriteBundle(dir, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Rebuild failed: %v\n", err)
				return
			}
			fmt.Fprintf(os.Stderr, "Rebuilt bundle (%d breakpoints)\n", cfg.Geometry().Count())
		})
		eg.Go(func() error { return w.Run(ctx) })
	}

	return eg.Wait()
}

// runInit collects the geometry interactively and writes the config file.
func runInit(path string) error {
	if path == "" {
		path = config.DefaultPath
	}

	cfg := config.Default()
	width := strconv.Itoa(cfg.Screen.Width)
	height := strconv.Itoa(cfg.Screen.Height)
	minScale := strconv.Itoa(cfg.Scale.Min)
	maxScale := strconv.Itoa(cfg.Scale.Max)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Screen width (units)").
				Value(&width).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Screen height (units)").
				Value(&height).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Minimum scale").
				Value(&minScale).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Maximum scale (exclusive)").
				Value(&maxScale).
				Validate(validatePositiveInt),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("init form: %w", err)
	}

	cfg.Screen.Width, _ = strconv.Atoi(width)
	cfg.Screen.Height, _ = strconv.Atoi(height)
	cfg.Scale.Min, _ = strconv.Atoi(minScale)
	cfg.Scale.Max, _ = strconv.Atoi(maxScale)

	if err := cfg.Geometry().Validate(); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
