package walker

import "github.com/go-gl/mathgl/mgl32"

// DefaultStep is how far, in world units, a sprite walks per frame while a
// direction is held.
const DefaultStep = 5

// Sprite is an animated quad driven by a walk-cycle Animator. It owns its
// texture and vertex buffer.
type Sprite struct {
	Quad

	// Step is the distance moved per frame while walking.
	Step float32

	anim *Animator
}

// NewSprite creates a sprite showing the top-left atlas cell of tex.
func NewSprite(ctx *RenderContext, tex *Texture) *Sprite {
	anim := NewAnimator()
	return &Sprite{
		Quad: newQuad(ctx, tex, anim.Region()),
		Step: DefaultStep,
		anim: anim,
	}
}

// Animator returns the sprite's walk-cycle state.
func (s *Sprite) Animator() *Animator {
	return s.anim
}

// Animate advances the walk cycle for dir by dt seconds and records the
// resulting atlas cell in Frame. Reports whether the frame changed. Geometry
// is not rebuilt; call RebuildGeometry.
func (s *Sprite) Animate(dir Direction, dt float64) bool {
	changed := s.anim.Advance(dir, dt)
	if changed {
		s.Frame = s.anim.Region()
	}
	return changed
}

// Move walks one step in dir.
func (s *Sprite) Move(dir Direction) {
	dx, dy := dir.Delta()
	s.Position = s.Position.Add(mgl32.Vec3{dx * s.Step, dy * s.Step, 0})
}

// Background is a static quad showing its whole texture.
type Background struct {
	Quad
}

// NewBackground creates a background covering the full region of tex.
func NewBackground(ctx *RenderContext, tex *Texture) *Background {
	return &Background{Quad: newQuad(ctx, tex, FullRegion)}
}
