package walker

// syntheticHold holds a direction for one frame. Injected directions replace
// keyboard walking input while queued.
type syntheticHold struct {
	dir Direction
}

// InjectHold queues dir to be held for the given number of frames. The
// events are consumed one per frame by Update, ahead of the keyboard.
func (s *Scene) InjectHold(dir Direction, frames int) {
	for i := 0; i < frames; i++ {
		s.injectQueue = append(s.injectQueue, syntheticHold{dir: dir})
	}
}

// InjectIdle queues frames with no direction held. Useful between holds of
// the same direction to let the keyboard path see a release.
func (s *Scene) InjectIdle(frames int) {
	s.InjectHold(DirectionNone, frames)
}

// InjectSpin requests a spin on the next frame, as if the spin key had been
// pressed.
func (s *Scene) InjectSpin() {
	s.spinRequested = true
}

// processInjectedInput pops one event from the inject queue. Returns the
// injected direction and true if an event was consumed (real keyboard
// directions should be skipped).
func (s *Scene) processInjectedInput() (Direction, bool) {
	if len(s.injectQueue) == 0 {
		return DirectionNone, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return evt.dir, true
}
