package walker

import (
	"image"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	drawCalls  int
	advanced   bool
}

// debugLog reports the last frame's stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	tex := s.sprite.Texture()
	var cell image.Rectangle
	if tex != nil {
		cell = s.sprite.Frame.Pixels(tex.Width, tex.Height)
	}
	logger.Debug("frame",
		"component", "scene",
		"frame", s.frame,
		"cell", cell,
		"update", stats.updateTime,
		"draw", stats.drawTime,
		"total", stats.updateTime+stats.drawTime,
		"draw_calls", stats.drawCalls,
		"advanced", stats.advanced,
	)
}

// debugCheckSpriteBounds warns when the sprite's center projects outside
// the viewport. Only called in debug mode.
func (s *Scene) debugCheckSpriteBounds() {
	vp := s.ctx.Viewport()
	x, y := vp.WorldToScreen(s.projection, s.sprite.Position)
	if x < vp.X || y < vp.Y || x > vp.X+vp.Width || y > vp.Y+vp.Height {
		logger.Warn("sprite outside window", "component", "scene", "x", x, "y", y)
	}
}
