package walker

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationEvent describes one change of the sprite's displayed frame.
type AnimationEvent struct {
	Frame     uint64 // Update count when the change happened
	Direction Direction
	Column    int
	TexX      float32
	TexY      float32
	X, Y      float32 // sprite position after this frame's step
}

// EventStore receives an AnimationEvent every time the frame changes.
type EventStore interface {
	EmitAnimation(e AnimationEvent)
}

// Scene is the demo: a static background and one walking sprite drawn with
// a shared RenderContext and a fixed orthographic projection.
//
// Update runs PollInput → UpdateAnimation → UpdateGeometry; Draw submits
// the background then the sprite. Ebitengine presents the frame.
type Scene struct {
	// ClearColor fills the screen before anything is drawn.
	ClearColor Color
	// ShowFPS draws the FPS/TPS and walk-state overlay.
	ShowFPS bool
	// ScreenshotDir is the directory where screenshots are saved.
	ScreenshotDir string

	cfg        Config
	bindings   Bindings
	ctx        *RenderContext
	projection mgl32.Mat4
	background *Background
	sprite     *Sprite
	keyboard   Keyboard

	now      func() time.Time
	lastTick time.Time
	ticked   bool

	spin          *TweenGroup
	spinDuration  float32
	spinRequested bool

	store    EventStore
	onFrame  []frameHandler
	nextHook uint32
	watcher  *AssetWatcher
	overlay  overlay

	debug    bool
	stats    debugStats
	frame    uint64
	advances uint64
	quit     bool
	headless bool

	injectQueue     []syntheticHold
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene validates cfg, compiles the shader and loads both textures.
// Every failure is fatal and wraps one of the package's sentinel errors.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, err := NewRenderContext(NewViewport(cfg.Window.Width, cfg.Window.Height))
	if err != nil {
		logger.Error("render context", "component", "scene", "error", err)
		return nil, err
	}
	bg, err := LoadTexture(cfg.Background.Path)
	if err != nil {
		ctx.Deallocate()
		return nil, fmt.Errorf("background: %w", err)
	}
	sp, err := LoadTexture(cfg.Sprite.Path)
	if err != nil {
		ctx.Deallocate()
		bg.Deallocate()
		return nil, fmt.Errorf("sprite: %w", err)
	}
	return newScene(cfg, ctx, bg, sp)
}

// newScene assembles a scene from already created resources.
func newScene(cfg Config, ctx *RenderContext, bg, sp *Texture) (*Scene, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	w, h := float32(cfg.Window.Width), float32(cfg.Window.Height)

	s := &Scene{
		ClearColor:    cfg.ClearColor(),
		ShowFPS:       cfg.ShowFPS,
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		bindings:      bindings,
		ctx:           ctx,
		projection:    Ortho(w, h),
		keyboard:      ebitenKeyboard{},
		now:           time.Now,
		spinDuration:  float32(cfg.Sprite.SpinDuration),
		debug:         cfg.Debug,
	}

	s.background = NewBackground(ctx, bg)
	s.background.Position = mgl32.Vec3{w / 2, h / 2, 0}
	if p := cfg.Background.Position; p != nil {
		s.background.Position = mgl32.Vec3(*p)
	}
	s.background.Scale = mgl32.Vec3{w, h, 1}
	if sc := cfg.Background.Scale; sc != nil {
		s.background.Scale = mgl32.Vec3(*sc)
	}

	s.sprite = NewSprite(ctx, sp)
	s.sprite.Position = mgl32.Vec3(cfg.Sprite.Position)
	s.sprite.Scale = mgl32.Vec3(cfg.Sprite.Scale)
	s.sprite.Rotation = cfg.Sprite.Rotation
	s.sprite.Step = cfg.Sprite.Step
	s.sprite.Animator().FrameDuration = cfg.Animation.FrameDuration

	logger.Info("scene ready", "component", "scene",
		"width", cfg.Window.Width, "height", cfg.Window.Height,
		"background", bg.Path, "sprite", sp.Path)
	return s, nil
}

// Sprite returns the walking sprite.
func (s *Scene) Sprite() *Sprite { return s.sprite }

// Background returns the background quad.
func (s *Scene) Background() *Background { return s.background }

// Projection returns the scene's orthographic projection.
func (s *Scene) Projection() mgl32.Mat4 { return s.projection }

// Frames returns the number of completed Update calls.
func (s *Scene) Frames() uint64 { return s.frame }

// Advances returns how many times the sprite's frame has changed.
func (s *Scene) Advances() uint64 { return s.advances }

// Spinning reports whether a spin is in progress.
func (s *Scene) Spinning() bool { return s.spin != nil }

// SetKeyboard replaces the key source. Tests use this to feed fixed input.
func (s *Scene) SetKeyboard(kb Keyboard) { s.keyboard = kb }

// SetClock replaces the monotonic clock used for frame deltas.
func (s *Scene) SetClock(now func() time.Time) {
	s.now = now
	s.ticked = false
}

// SetEventStore forwards animation events to store. Pass nil to stop.
func (s *Scene) SetEventStore(store EventStore) { s.store = store }

type frameHandler struct {
	id uint32
	fn func()
}

// CallbackHandle allows removing a callback registered with OnFrame.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// OnFrame registers fn to run at the end of every Update, after animation
// events for the frame have been emitted.
func (s *Scene) OnFrame(fn func()) CallbackHandle {
	s.nextHook++
	s.onFrame = append(s.onFrame, frameHandler{id: s.nextHook, fn: fn})
	return CallbackHandle{id: s.nextHook, scene: s}
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	hs := h.scene.onFrame
	for i := range hs {
		if hs[i].id == h.id {
			// Copy so a dispatch already ranging over hs is unaffected.
			h.scene.onFrame = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// SetDebugMode enables per-frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// Quit asks the loop to stop after the current frame.
func (s *Scene) Quit() { s.quit = true }

// Done reports whether a close was requested.
func (s *Scene) Done() bool { return s.quit }

// Update polls input and advances the sprite by one frame.
func (s *Scene) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dt := s.tick()
	s.drainWatcher()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	in := pollKeyboard(s.keyboard, &s.bindings)
	if dir, ok := s.processInjectedInput(); ok {
		in.dir = dir
	}
	if in.quit {
		s.quit = true
	}
	if in.screenshot {
		s.Screenshot("key")
	}
	if in.spin || s.spinRequested {
		s.startSpin()
	}
	s.spinRequested = false
	s.updateSpin(dt)

	advanced := false
	if in.dir != DirectionNone {
		advanced = s.sprite.Animate(in.dir, dt)
		s.sprite.Move(in.dir)
		s.sprite.RebuildGeometry()
		if advanced {
			s.advances++
			s.emit()
		}
	}

	if s.ShowFPS {
		s.overlay.update(dt, s.sprite.Animator())
	}
	for _, h := range s.onFrame {
		h.fn()
	}
	s.frame++

	if s.debug {
		s.stats = debugStats{updateTime: time.Since(t0), advanced: advanced}
		s.debugCheckSpriteBounds()
	}
}

// tick returns the seconds since the previous Update, or 0 on the first.
func (s *Scene) tick() float64 {
	now := s.now()
	if !s.ticked {
		s.ticked = true
		s.lastTick = now
		return 0
	}
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (s *Scene) startSpin() {
	if s.spin != nil {
		return
	}
	s.spin = spinTween(&s.sprite.Quad, s.spinDuration)
}

func (s *Scene) updateSpin(dt float64) {
	if s.spin == nil {
		return
	}
	s.spin.Update(float32(dt))
	if s.spin.Done {
		s.spin = nil
	}
}

func (s *Scene) emit() {
	if s.store == nil {
		return
	}
	a := s.sprite.Animator()
	s.store.EmitAnimation(AnimationEvent{
		Frame:     s.frame,
		Direction: a.Row(),
		Column:    a.Column(),
		TexX:      a.TexX(),
		TexY:      a.TexY(),
		X:         s.sprite.Position[0],
		Y:         s.sprite.Position[1],
	})
}

// Draw clears the screen and draws the background then the sprite.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.ctx.resetDrawCalls()
	}

	screen.Fill(s.ClearColor.toRGBA())
	s.background.Draw(screen, s.projection)
	s.sprite.Draw(screen, s.projection)
	s.flushScreenshots(screen)
	if s.ShowFPS {
		s.overlay.draw(screen)
	}

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.drawCalls = s.ctx.DrawCalls()
		s.debugLog(s.stats)
	}
}

// Layout keeps the logical screen at the configured window size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// EnableWatch reloads either texture in place when its file changes.
func (s *Scene) EnableWatch() error {
	if s.watcher != nil {
		return nil
	}
	w, err := NewAssetWatcher(s.background.Texture().Path, s.sprite.Texture().Path)
	if err != nil {
		return err
	}
	s.watcher = w
	logger.Info("watching assets", "component", "watch",
		"background", s.background.Texture().Path, "sprite", s.sprite.Texture().Path)
	return nil
}

// drainWatcher applies every pending file change without blocking.
func (s *Scene) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			s.reloadTexture(path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			logger.Warn("watch error", "component", "watch", "error", err)
		default:
			return
		}
	}
}

// reloadTexture reloads every quad whose texture came from path. A failed
// reload keeps the previous texture.
func (s *Scene) reloadTexture(path string) {
	for _, q := range []*Quad{&s.background.Quad, &s.sprite.Quad} {
		if !q.texture.Valid() || !samePath(q.texture.Path, path) {
			continue
		}
		tex, err := LoadTexture(q.texture.Path)
		if err != nil {
			logger.Warn("reload failed, keeping previous texture", "component", "watch", "path", path, "error", err)
			continue
		}
		q.SetTexture(tex)
		logger.Info("texture reloaded", "component", "watch", "path", path)
	}
}

func samePath(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

// Close stops the asset watcher and releases GPU resources.
func (s *Scene) Close() error {
	var err error
	if s.watcher != nil {
		err = s.watcher.Close()
		s.watcher = nil
	}
	if s.ctx != nil {
		s.ctx.Deallocate()
	}
	return err
}
