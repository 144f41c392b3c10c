package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/walker"
)

func TestWalkConfigLoads(t *testing.T) {
	cfg, err := walker.LoadConfig("walk.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := cfg.Bindings(); err != nil {
		t.Errorf("Bindings: %v", err)
	}
	for _, p := range []string{cfg.Background.Path, cfg.Sprite.Path} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("asset %s: %v", p, err)
		}
	}
}

func TestWalkAssetsDecode(t *testing.T) {
	for _, name := range []string{"background.png", "sprite.png"} {
		f, err := os.Open(filepath.Join("assets", name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := walker.DecodeTexture(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if name == "sprite.png" && img.Channels != 4 {
			t.Errorf("sprite channels = %d, want 4", img.Channels)
		}
	}
}

func TestWalkScriptLoads(t *testing.T) {
	data, err := os.ReadFile("walk_script.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := walker.LoadTestScript(data); err != nil {
		t.Errorf("LoadTestScript: %v", err)
	}
}
