package walker

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config describes the whole demo: window, assets, sprite placement,
// animation timing and key bindings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Background BackgroundConfig `yaml:"background"`
	Sprite     SpriteConfig     `yaml:"sprite"`
	Animation  AnimationConfig  `yaml:"animation"`
	Keys       KeyConfig        `yaml:"keys"`

	LogLevel      string `yaml:"log_level"`
	ShowFPS       bool   `yaml:"show_fps"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	Watch         bool   `yaml:"watch"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ClearColor string `yaml:"clear_color"`
	// Graphics selects the graphics library: auto, opengl, directx or metal.
	Graphics string `yaml:"graphics"`
}

// BackgroundConfig places the background. An omitted Position centers it
// in the window and an omitted Scale stretches it to cover the window.
type BackgroundConfig struct {
	Path     string      `yaml:"path"`
	Position *[3]float32 `yaml:"position,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
}

type SpriteConfig struct {
	Path     string     `yaml:"path"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
	Rotation float32    `yaml:"rotation"`
	// Step is the distance walked per frame.
	Step float32 `yaml:"step"`
	// SpinDuration is the length of one spin, in seconds.
	SpinDuration float64 `yaml:"spin_duration"`
}

type AnimationConfig struct {
	FrameDuration float64 `yaml:"frame_duration"`
}

// KeyConfig lists Ebitengine key names per action.
type KeyConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Spin       []string `yaml:"spin"`
	Screenshot []string `yaml:"screenshot"`
	Quit       []string `yaml:"quit"`
}

// DefaultConfig returns an 800×600 "Sprite Animation" window with the
// sprite at the center.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Sprite Animation",
			Width:      800,
			Height:     600,
			ClearColor: "#334d4d",
			Graphics:   "auto",
		},
		Background: BackgroundConfig{
			Path: "assets/background.png",
		},
		Sprite: SpriteConfig{
			Path:         "assets/sprite.png",
			Position:     [3]float32{400, 300, 0},
			Scale:        [3]float32{100, 100, 1},
			Step:         DefaultStep,
			SpinDuration: 0.6,
		},
		Animation: AnimationConfig{FrameDuration: DefaultFrameDuration},
		Keys: KeyConfig{
			Up:         []string{"W", "ArrowUp"},
			Down:       []string{"S", "ArrowDown"},
			Left:       []string{"A", "ArrowLeft"},
			Right:      []string{"D", "ArrowRight"},
			Spin:       []string{"Space"},
			Screenshot: []string{"F12"},
			Quit:       []string{"Escape"},
		},
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown fields are an
// error. Relative asset paths and the screenshot directory are resolved
// against the file's directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("walker: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("walker: %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Background.Path, &c.Sprite.Path, &c.ScreenshotDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks sizes, durations, colors, key names and the log level.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("walker: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Window.ClearColor); err != nil {
		return err
	}
	if _, err := ParseGraphicsLibrary(c.Window.Graphics); err != nil {
		return err
	}
	if c.Background.Path == "" || c.Sprite.Path == "" {
		return fmt.Errorf("walker: background and sprite paths are required")
	}
	if c.Animation.FrameDuration <= 0 {
		return fmt.Errorf("walker: animation.frame_duration must be positive, got %v", c.Animation.FrameDuration)
	}
	if c.Sprite.Step < 0 {
		return fmt.Errorf("walker: sprite.step must not be negative, got %v", c.Sprite.Step)
	}
	if c.Sprite.SpinDuration <= 0 {
		return fmt.Errorf("walker: sprite.spin_duration must be positive, got %v", c.Sprite.SpinDuration)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Bindings resolves the configured key names.
func (c *Config) Bindings() (Bindings, error) {
	var b Bindings
	fields := []struct {
		name  string
		names []string
		dst   *[]ebiten.Key
	}{
		{"up", c.Keys.Up, &b.Up},
		{"down", c.Keys.Down, &b.Down},
		{"left", c.Keys.Left, &b.Left},
		{"right", c.Keys.Right, &b.Right},
		{"spin", c.Keys.Spin, &b.Spin},
		{"screenshot", c.Keys.Screenshot, &b.Screenshot},
		{"quit", c.Keys.Quit, &b.Quit},
	}
	for _, f := range fields {
		keys, err := ParseKeys(f.names)
		if err != nil {
			return Bindings{}, fmt.Errorf("keys.%s: %w", f.name, err)
		}
		*f.dst = keys
	}
	return b, nil
}

// ClearColor returns the parsed window clear color.
func (c *Config) ClearColor() Color {
	col, err := ParseColor(c.Window.ClearColor)
	if err != nil {
		return Color{0.2, 0.3, 0.3, 1}
	}
	return col
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa or an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return Color{}, fmt.Errorf("walker: invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("walker: invalid color %q: %w", s, err)
		}
		return Color{
			R: float64(v>>24&0xff) / 255,
			G: float64(v>>16&0xff) / 255,
			B: float64(v>>8&0xff) / 255,
			A: float64(v&0xff) / 255,
		}, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
			A: float64(rgba.A) / 255,
		}, nil
	}
	return Color{}, fmt.Errorf("walker: unknown color %q", s)
}

// ParseGraphicsLibrary maps a library name to its Ebitengine constant.
func ParseGraphicsLibrary(name string) (ebiten.GraphicsLibrary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ebiten.GraphicsLibraryAuto, nil
	case "opengl", "gl":
		return ebiten.GraphicsLibraryOpenGL, nil
	case "directx", "dx":
		return ebiten.GraphicsLibraryDirectX, nil
	case "metal":
		return ebiten.GraphicsLibraryMetal, nil
	}
	return ebiten.GraphicsLibraryAuto, fmt.Errorf("%w: unknown graphics library %q", ErrContextInit, name)
}
