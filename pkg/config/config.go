// Package config loads the optional .emuweb.yaml project file.
//
// Without a config file the tool runs with the shipped front end's geometry,
// so a bare invocation always reproduces the stock breakpoint table.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"emuweb/pkg/layout"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = ".emuweb.yaml"

// Config holds the project settings.
type Config struct {
	Screen struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"screen"`
	Scale struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"scale"`
	Bundle struct {
		// Dir is the default bundle output directory for --export-bundle.
		Dir string `yaml:"dir"`
		// Title overrides the page title in the generated index.html.
		Title string `yaml:"title"`
	} `yaml:"bundle"`
}

// Default returns the configuration matching the shipped front end.
func Default() Config {
	var c Config
	g := layout.DefaultGeometry()
	c.Screen.Width = g.ScreenWidth
	c.Screen.Height = g.ScreenHeight
	c.Scale.Min = g.MinScale
	c.Scale.Max = g.MaxScale
	c.Bundle.Dir = "web"
	c.Bundle.Title = "emuweb"
	return c
}

// Load reads the config at path, or DefaultPath when path is empty. A missing
// file is not an error: defaults are returned. A present but invalid file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Geometry().Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Geometry returns the layout geometry the config describes.
func (c Config) Geometry() layout.Geometry {
	return layout.Geometry{
		ScreenWidth:  c.Screen.Width,
		ScreenHeight: c.Screen.Height,
		MinScale:     c.Scale.Min,
		MaxScale:     c.Scale.Max,
	}
}

// Save writes the config as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
