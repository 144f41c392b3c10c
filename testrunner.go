package walker

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string `json:"action"`
	Label     string `json:"label,omitempty"`
	Direction string `json:"direction,omitempty"`
	Frames    int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing. Attach to a Scene via SetTestRunner.
//
// Supported actions: hold (direction, frames), wait (frames), spin,
// screenshot (label) and quit.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "hold":
			if _, err := ParseDirection(st.Direction); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			if st.Frames < 1 {
				return nil, fmt.Errorf("parse test script: step %d: hold needs frames >= 1", i)
			}
		case "wait", "spin", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is polled each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	logger.Debug("test step", "component", "runner", "index", r.cursor-1, "action", st.Action)

	switch st.Action {
	case "hold":
		dir, _ := ParseDirection(st.Direction)
		s.InjectHold(dir, st.Frames)
	case "spin":
		s.InjectSpin()
	case "screenshot":
		s.Screenshot(st.Label)
	case "quit":
		s.Quit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
