// Package config loads snapframe's TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"snapframe/internal/export"
	"snapframe/internal/presentation"
	"snapframe/pkg/colorutil"
)

// Config is the top-level TOML structure.
type Config struct {
	Presentation PresentationConfig `toml:"presentation"`
	Export       ExportConfig       `toml:"export"`
	Window       WindowConfig       `toml:"window"`
}

// PresentationConfig holds the framing applied to newly opened sessions.
type PresentationConfig struct {
	Padding      float64 `toml:"padding"`
	Inset        float64 `toml:"inset"`
	CornerRadius float64 `toml:"corner_radius"`
	ShadowRadius float64 `toml:"shadow_radius"`
	Background   string  `toml:"background"` // swatch name or #rrggbb
	Ratio        string  `toml:"ratio"`      // "auto", "4:3", "3:2", "16:9"
}

type ExportConfig struct {
	FileName string `toml:"file_name"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

const defaultConfigTOML = `# snapframe configuration

[presentation]
padding = 40.0
inset = 0.0
corner_radius = 8.0
shadow_radius = 20.0
background = "Ocean"
ratio = "auto"

[export]
file_name = "snapframe.png"

[window]
width = 1200.0
height = 800.0
`

// Default returns the built-in configuration.
func Default() Config {
	p := presentation.Default()
	return Config{
		Presentation: PresentationConfig{
			Padding:      p.Padding,
			Inset:        p.Inset,
			CornerRadius: p.CornerRadius,
			ShadowRadius: p.ShadowRadius,
			Background:   p.Background.Name,
			Ratio:        p.Ratio.String(),
		},
		Export: ExportConfig{FileName: export.DefaultFileName},
		Window: WindowConfig{Width: 1200, Height: 800},
	}
}

// configDir returns the directory for snapframe config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "snapframe"), nil
}

// Path returns the full path to config.toml.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the user's config file, creating it with defaults if missing.
// On error the defaults are returned alongside it.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, creating it with defaults if missing.
func LoadFrom(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return Default(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return Default(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes. Out-of-range numbers are clamped. An unknown
// background or ratio falls back to its default and is reported as an error
// together with the otherwise usable config.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalize(cfg)
}

func normalize(c Config) (Config, error) {
	def := Default()
	var errs []error

	p := &c.Presentation
	p.Padding = presentation.PaddingRange.Clamp(p.Padding)
	p.Inset = presentation.InsetRange.Clamp(p.Inset)
	p.CornerRadius = presentation.CornerRadiusRange.Clamp(p.CornerRadius)
	p.ShadowRadius = presentation.ShadowRadiusRange.Clamp(p.ShadowRadius)

	if sw, ok := colorutil.LookupSwatch(strings.TrimSpace(p.Background)); ok {
		p.Background = sw.Name
	} else {
		errs = append(errs, fmt.Errorf("background %q: %w", p.Background, presentation.ErrUnknownSwatch))
		p.Background = def.Presentation.Background
	}
	if r, err := presentation.ParseRatio(strings.TrimSpace(p.Ratio)); err == nil {
		p.Ratio = r.String()
	} else {
		errs = append(errs, err)
		p.Ratio = def.Presentation.Ratio
	}

	c.Export.FileName = strings.TrimSpace(c.Export.FileName)
	if c.Export.FileName == "" || c.Export.FileName != filepath.Base(c.Export.FileName) {
		c.Export.FileName = def.Export.FileName
	}
	if c.Window.Width < 400 || c.Window.Height < 300 {
		c.Window = def.Window
	}
	return c, errors.Join(errs...)
}

// PresentationState builds the initial framing state for a session.
func (c Config) PresentationState() presentation.State {
	s := presentation.Default()
	s.SetPadding(c.Presentation.Padding)
	s.SetInset(c.Presentation.Inset)
	s.SetCornerRadius(c.Presentation.CornerRadius)
	s.SetShadowRadius(c.Presentation.ShadowRadius)
	_ = s.SetBackground(c.Presentation.Background)
	_ = s.SetRatio(c.Presentation.Ratio)
	return s
}

// WithPresentation records the framing of s so it can be saved as the new default.
func (c Config) WithPresentation(s presentation.State) Config {
	c.Presentation = PresentationConfig{
		Padding:      s.Padding,
		Inset:        s.Inset,
		CornerRadius: s.CornerRadius,
		ShadowRadius: s.ShadowRadius,
		Background:   s.Background.Name,
		Ratio:        s.Ratio.String(),
	}
	return c
}

// SaveTo writes c to path, creating the directory if needed.
func SaveTo(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config.toml: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config.toml: %w", err)
	}
	return nil
}

// Save writes c to the user's config file.
func Save(c Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, c)
}
