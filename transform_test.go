package walker

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want mgl32.Vec4) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- ModelMatrix ---

func TestModelMatrixIdentity(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{}, 0, mgl32.Vec3{1, 1, 1})
	if !m.ApproxEqualThreshold(mgl32.Ident4(), epsilon) {
		t.Errorf("identity model = %v", m)
	}
}

func TestModelMatrixTranslation(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{10, 20, 0}, 0, mgl32.Vec3{1, 1, 1})
	assertVec(t, "origin", m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}), mgl32.Vec4{10, 20, 0, 1})
}

func TestModelMatrixScaleThenRotateThenTranslate(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{10, 20, 0}, 90, mgl32.Vec3{2, 3, 1})

	// (1,0) scales to (2,0), rotates to (0,2), translates to (10,22).
	assertVec(t, "x axis", m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}), mgl32.Vec4{10, 22, 0, 1})
	// (0,1) scales to (0,3), rotates to (-3,0), translates to (7,20).
	assertVec(t, "y axis", m.Mul4x1(mgl32.Vec4{0, 1, 0, 1}), mgl32.Vec4{7, 20, 0, 1})
}

func TestModelMatrixFullTurnIsIdentityRotation(t *testing.T) {
	a := ModelMatrix(mgl32.Vec3{5, 5, 0}, 0, mgl32.Vec3{4, 4, 1})
	b := ModelMatrix(mgl32.Vec3{5, 5, 0}, 360, mgl32.Vec3{4, 4, 1})
	if !a.ApproxEqualThreshold(b, epsilon) {
		t.Errorf("0° and 360° differ:\n%v\n%v", a, b)
	}
}

// --- Ortho / Viewport ---

func TestOrthoMapsWorldToPixels(t *testing.T) {
	proj := Ortho(800, 600)
	vp := NewViewport(800, 600)

	tests := []struct {
		world  mgl32.Vec3
		sx, sy float32
	}{
		{mgl32.Vec3{0, 0, 0}, 0, 0},
		{mgl32.Vec3{400, 300, 0}, 400, 300},
		{mgl32.Vec3{800, 600, 0}, 800, 600},
		{mgl32.Vec3{100, 500, 0}, 100, 500},
	}
	for _, tt := range tests {
		x, y := vp.WorldToScreen(proj, tt.world)
		assertNear(t, "x", x, tt.sx)
		assertNear(t, "y", y, tt.sy)
	}
}

func TestOrthoYDown(t *testing.T) {
	clip := Ortho(800, 600).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertNear(t, "ndc y at top", clip[1], 1)
	clip = Ortho(800, 600).Mul4x1(mgl32.Vec4{0, 600, 0, 1})
	assertNear(t, "ndc y at bottom", clip[1], -1)
}

func TestViewportOffsetAndDivide(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 200, Height: 100}
	x, y := vp.ToScreen(mgl32.Vec4{0, 0, 0, 2})
	assertNear(t, "x", x, 110)
	assertNear(t, "y", y, 70)

	x, y = vp.ToScreen(mgl32.Vec4{-2, 2, 0, 2})
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 20)
}

func TestViewportZeroW(t *testing.T) {
	vp := NewViewport(2, 2)
	x, y := vp.ToScreen(mgl32.Vec4{1, -1, 0, 0})
	assertNear(t, "x", x, 2)
	assertNear(t, "y", y, 2)
}
