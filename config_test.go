package walker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "Sprite Animation" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Animation.FrameDuration != 0.25 {
		t.Errorf("frame duration = %v, want 0.25", cfg.Animation.FrameDuration)
	}
	c := cfg.ClearColor()
	if c.R < 0.19 || c.R > 0.21 || c.G < 0.29 || c.G > 0.31 || c.A != 1 {
		t.Errorf("clear color = %+v, want ~(0.2, 0.3, 0.3)", c)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
window:
  title: Walk
  clear_color: cornflowerblue
sprite:
  position: [100, 200, 0]
  step: 2.5
animation:
  frame_duration: 0.1
keys:
  up: [I]
show_fps: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Window.Title != "Walk" || cfg.Window.Width != 800 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Sprite.Position != [3]float32{100, 200, 0} || cfg.Sprite.Step != 2.5 {
		t.Errorf("sprite = %+v", cfg.Sprite)
	}
	if cfg.Sprite.Scale != [3]float32{100, 100, 1} {
		t.Errorf("unset scale should keep its default, got %v", cfg.Sprite.Scale)
	}
	if cfg.Animation.FrameDuration != 0.1 || !cfg.ShowFPS {
		t.Errorf("cfg = %+v", cfg)
	}
	b, err := cfg.Bindings()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Up) != 1 || b.Up[0] != ebiten.KeyI {
		t.Errorf("Up = %v, want [I]", b.Up)
	}
	if len(b.Down) != 2 {
		t.Errorf("Down = %v, want the default pair", b.Down)
	}
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Width = %d", cfg.Window.Width)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "window:\n  colour: red\n", "colour"},
		{"bad size", "window:\n  width: 0\n", "window size"},
		{"bad color", "window:\n  clear_color: '#12'\n", "color"},
		{"bad key", "keys:\n  quit: [Nope]\n", "keys.quit"},
		{"bad duration", "animation:\n  frame_duration: 0\n", "frame_duration"},
		{"bad spin", "sprite:\n  spin_duration: -1\n", "spin_duration"},
		{"bad level", "log_level: loud\n", "log level"},
		{"bad graphics", "window:\n  graphics: vulkan\n", "vulkan"},
		{"short vector", "sprite:\n  position: [1, 2]\n", "array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk.yaml")
	abs := filepath.Join(dir, "elsewhere", "bg.png")
	data := "background:\n  path: " + abs + "\nsprite:\n  path: art/hero.png\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Sprite.Path != filepath.Join(dir, "art", "hero.png") {
		t.Errorf("Sprite.Path = %q", cfg.Sprite.Path)
	}
	if cfg.Background.Path != abs {
		t.Errorf("absolute path changed: %q", cfg.Background.Path)
	}
	if cfg.ScreenshotDir != filepath.Join(dir, "screenshots") {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
		{"#fff", Color{1, 1, 1, 1}},
		{"black", Color{0, 0, 0, 1}},
		{"White", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
	for _, bad := range []string{"", "#12345", "#zzzzzz", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestParseGraphicsLibrary(t *testing.T) {
	tests := map[string]ebiten.GraphicsLibrary{
		"":       ebiten.GraphicsLibraryAuto,
		"auto":   ebiten.GraphicsLibraryAuto,
		"OpenGL": ebiten.GraphicsLibraryOpenGL,
		"metal":  ebiten.GraphicsLibraryMetal,
		"dx":     ebiten.GraphicsLibraryDirectX,
	}
	for in, want := range tests {
		got, err := ParseGraphicsLibrary(in)
		if err != nil || got != want {
			t.Errorf("ParseGraphicsLibrary(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestParseConfigBackgroundPlacement(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Background.Position != nil || cfg.Background.Scale != nil {
		t.Errorf("omitted placement should stay nil, got %v %v", cfg.Background.Position, cfg.Background.Scale)
	}

	cfg, err = ParseConfig([]byte("background:\n  position: [0, 0, 0]\n  scale: [400, 300, 1]\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Background.Position == nil || *cfg.Background.Position != [3]float32{} {
		t.Errorf("explicit origin lost: %v", cfg.Background.Position)
	}
	if cfg.Background.Scale == nil || *cfg.Background.Scale != [3]float32{400, 300, 1} {
		t.Errorf("scale = %v", cfg.Background.Scale)
	}
}
