package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"go.uber.org/zap"
)

// Variants of the demo.
const (
	VariantBasic = "basic"
	VariantMulti = "multi"
	VariantDebug = "debug"
)

type WindowConfig struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type TextureConfig struct {
	Diffuse  string `json:"diffuse"`
	Specular string `json:"specular"`
}

type Config struct {
	Window        WindowConfig  `json:"window"`
	Variant       string        `json:"variant"`
	Textures      TextureConfig `json:"textures"`
	FontScale     float32       `json:"font_scale"`
	ClearColor    [4]float32    `json:"clear_color"`
	ScreenshotDir string        `json:"screenshot_dir"`
	DebugLog      bool          `json:"debug_log"`
}

// Flags are the command line overrides. Zero values leave the config alone.
type Flags struct {
	ConfigPath string
	Variant    string
	DebugLog   bool
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1600,
			Height: 1200,
			Title:  "Lumen3D",
			VSync:  true,
		},
		Variant: VariantDebug,
		Textures: TextureConfig{
			Diffuse:  "resources/textures/container2.png",
			Specular: "resources/textures/container2_specular.png",
		},
		FontScale:     1.5,
		ClearColor:    [4]float32{0.32, 0.27, 0.27, 0.5},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a JSON config on top of the defaults. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("No config file found, using defaults", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flags and validates the result.
func (c *Config) Resolve(flags Flags) error {
	if flags.Variant != "" {
		c.Variant = flags.Variant
	}
	if flags.DebugLog {
		c.DebugLog = true
	}

	if _, _, err := Preset(c.Variant); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FontScale <= 0 {
		c.FontScale = 1
	}
	return nil
}

// Preset maps a variant to its lighting model and whether the debug line
// overlays exist.
func Preset(variant string) (renderer.LightingModel, bool, error) {
	switch variant {
	case VariantBasic:
		return renderer.SINGLE_LIGHT, false, nil
	case VariantMulti:
		return renderer.POINT_LIGHT_ARRAY, false, nil
	case VariantDebug:
		return renderer.POINT_LIGHT_ARRAY, true, nil
	}
	return 0, false, fmt.Errorf("config: unknown variant %q (want %s, %s or %s)", variant, VariantBasic, VariantMulti, VariantDebug)
}
