package walker

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float32 fields of a Quad simultaneously.
// Create one via TweenRotation and call Update(dt) each frame; values are
// written straight into the quad, which picks them up on its next Draw.
//
// There is no global animation manager: the Scene drives the one spin tween
// it owns.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float32
	Done   bool

	// OnDone, if set, runs once when every tween has finished.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// TweenRotation creates a TweenGroup that animates q.Rotation (degrees) to
// the target value over the given duration using the easing function.
func TweenRotation(q *Quad, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(q.Rotation, to, duration, fn)
	g.fields[0] = &q.Rotation
	return g
}

// spinTween turns q through a full clockwise revolution and wraps the angle
// back into [0, 360) when it finishes.
func spinTween(q *Quad, duration float32) *TweenGroup {
	g := TweenRotation(q, q.Rotation+360, duration, ease.OutQuad)
	g.OnDone = func() {
		q.Rotation = float32(math.Mod(float64(q.Rotation), 360))
		if q.Rotation < 0 {
			q.Rotation += 360
		}
	}
	return g
}
