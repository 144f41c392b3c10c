package walker

// DefaultFrameDuration is how long, in seconds, a walk frame stays on screen
// while the same direction is held.
const DefaultFrameDuration = 0.25

// Animator is the sprite's walk-cycle state machine. It turns a held
// direction plus elapsed time into the atlas cell to display.
//
// The zero value is not ready for use; construct with NewAnimator.
type Animator struct {
	// FrameDuration is the minimum accumulated time before the column
	// advances within a row.
	FrameDuration float64

	row     Direction
	column  int
	texY    float32
	elapsed float64
}

// NewAnimator returns an Animator with no active row, showing cell (0, 0).
func NewAnimator() *Animator {
	return &Animator{
		FrameDuration: DefaultFrameDuration,
		row:           DirectionNone,
	}
}

// Advance accumulates dt (seconds, negative values count as 0) and moves to
// the next frame when the gate has elapsed. A direction different from the
// active row skips the gate: the row switches and the column snaps to 0.
// Reports whether the displayed frame changed.
func (a *Animator) Advance(dir Direction, dt float64) bool {
	if !dir.Valid() {
		return false
	}
	if dt > 0 {
		a.elapsed += dt
	}
	if a.elapsed < a.FrameDuration && dir == a.row {
		return false
	}
	a.elapsed = 0

	if dir != a.row || a.column >= AtlasColumns-1 {
		a.column = 0
		a.row = dir
	} else {
		a.column++
	}
	a.texY = RowOffset(dir)
	return true
}

// Reset returns the animator to its initial state.
func (a *Animator) Reset() {
	a.row = DirectionNone
	a.column = 0
	a.texY = 0
	a.elapsed = 0
}

// Row returns the active row, or DirectionNone before the first Advance.
func (a *Animator) Row() Direction { return a.row }

// Column returns the current frame index within the row, 0..AtlasColumns-1.
func (a *Animator) Column() int { return a.column }

// Elapsed returns the time accumulated since the last frame change.
func (a *Animator) Elapsed() float64 { return a.elapsed }

// TexX returns the normalized left edge of the current frame.
func (a *Animator) TexX() float32 { return float32(a.column) * FrameSize }

// TexY returns the normalized top edge of the current frame.
func (a *Animator) TexY() float32 { return a.texY }

// Region returns the atlas cell currently displayed.
func (a *Animator) Region() Region {
	// Advance keeps column and row inside the grid.
	r, _ := GridRegion(a.column, AtlasRow(a.row), AtlasColumns, AtlasRows)
	return r
}
