package walker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectHold(t *testing.T) {
	s, _ := newTestScene(t)

	s.InjectHold(DirectionLeft, 3)
	if len(s.injectQueue) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(s.injectQueue))
	}

	for i := 0; i < 3; i++ {
		dir, ok := s.processInjectedInput()
		if !ok || dir != DirectionLeft {
			t.Fatalf("frame %d: got (%v, %v), want (left, true)", i, dir, ok)
		}
	}
	if len(s.injectQueue) != 0 {
		t.Fatalf("expected empty queue, got %d", len(s.injectQueue))
	}
}

func TestProcessInjectedInputEmpty(t *testing.T) {
	s, _ := newTestScene(t)
	dir, ok := s.processInjectedInput()
	if ok || dir != DirectionNone {
		t.Errorf("empty queue: got (%v, %v)", dir, ok)
	}
}

func TestInjectIdleQueuesNone(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectHold(DirectionUp, 1)
	s.InjectIdle(2)
	want := []Direction{DirectionUp, DirectionNone, DirectionNone}
	for i, w := range want {
		if dir, ok := s.processInjectedInput(); !ok || dir != w {
			t.Errorf("event %d: got (%v, %v), want %v", i, dir, ok, w)
		}
	}
}

func TestInjectedHoldOverridesKeyboard(t *testing.T) {
	s, kb := newTestScene(t)
	kb.held[ebiten.KeyD] = true
	s.InjectHold(DirectionUp, 1)

	s.Update()
	if got := s.Sprite().Animator().Row(); got != DirectionUp {
		t.Errorf("Row = %v, want up", got)
	}

	// Queue drained: the keyboard takes over again.
	s.Update()
	if got := s.Sprite().Animator().Row(); got != DirectionRight {
		t.Errorf("Row = %v, want right", got)
	}
}

func TestInjectSpin(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectSpin()
	s.Update()
	if !s.Spinning() {
		t.Error("InjectSpin should start a spin on the next frame")
	}
}
