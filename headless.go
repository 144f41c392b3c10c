package walker

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Frames is the number of Update calls. Zero runs until the attached
	// test runner finishes or the scene quits.
	Frames int
	// TPS sets the simulated tick rate. Defaults to ebiten.DefaultTPS.
	TPS int
}

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames   uint64
	Advances uint64
	Row      Direction
	Column   int
	Position mgl32.Vec3
	Rotation float32
}

// headlessFrameLimit bounds script-driven runs that never finish.
const headlessFrameLimit = 1 << 20

// ErrNoHeadlessWork is returned when RunHeadless has neither a frame count
// nor a test runner to stop it.
var ErrNoHeadlessWork = errors.New("walker: headless run needs a frame count or a test script")

// RunHeadless drives scene.Update against a stepped clock with no window
// and no drawing. Keyboard input is disabled; use a TestRunner or
// InjectHold to move the sprite.
func RunHeadless(scene *Scene, cfg HeadlessConfig) (HeadlessResult, error) {
	limit := cfg.Frames
	if limit <= 0 {
		if scene.testRunner == nil {
			return HeadlessResult{}, ErrNoHeadlessWork
		}
		limit = headlessFrameLimit
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	step := time.Second / time.Duration(tps)

	now := time.Unix(0, 0)
	scene.SetClock(func() time.Time { return now })
	scene.SetKeyboard(noKeyboard{})
	scene.headless = true
	defer func() { scene.headless = false }()

	start := scene.Frames()
	for i := 0; i < limit; i++ {
		scene.Update()
		now = now.Add(step)
		if scene.Done() {
			break
		}
		if cfg.Frames <= 0 && scene.testRunner.Done() {
			break
		}
	}

	sp := scene.Sprite()
	res := HeadlessResult{
		Frames:   scene.Frames() - start,
		Advances: scene.Advances(),
		Row:      sp.Animator().Row(),
		Column:   sp.Animator().Column(),
		Position: sp.Position,
		Rotation: sp.Rotation,
	}
	logger.Info("headless run finished", "component", "runner",
		"frames", res.Frames, "advances", res.Advances, "row", res.Row, "column", res.Column)
	return res, nil
}
