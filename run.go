package walker

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a fixed-size window for scene and blocks until the window is
// closed or the quit key is pressed. Window and context failures wrap
// ErrWindowCreation and ErrContextInit.
func Run(scene *Scene) error {
	w := scene.cfg.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrWindowCreation, w.Width, w.Height)
	}
	lib, err := ParseGraphicsLibrary(w.Graphics)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	logger.Info("starting", "component", "scene", "title", w.Title, "graphics", w.Graphics)
	if err := ebiten.RunGameWithOptions(&game{scene: scene}, &ebiten.RunGameOptions{
		GraphicsLibrary: lib,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrContextInit, err)
	}
	logger.Info("stopped", "component", "scene", "frames", scene.Frames())
	return nil
}
