package walker

import "github.com/go-gl/mathgl/mgl32"

// Ortho returns the fixed 2D projection for a width×height window: world
// units equal pixels, origin at the top-left, Y increasing downward, depth
// range [-1, 1].
func Ortho(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}

// ModelMatrix composes translate(position) · rotateZ(rotation degrees) ·
// scale(scale).
//
// Composition order (applied to a vertex, right to left):
//
//	Scale -> Rotate(Z) -> Translate
func ModelMatrix(position mgl32.Vec3, rotation float32, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position[0], position[1], position[2])
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation))
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}

// Viewport is the destination rectangle, in pixels, that normalized device
// coordinates map onto.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// NewViewport returns a viewport covering a width×height target.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height)}
}

// ToScreen performs the perspective divide on a clip-space point and maps
// the result to pixel coordinates with Y pointing down.
func (v Viewport) ToScreen(clip mgl32.Vec4) (x, y float32) {
	w := clip[3]
	if w == 0 {
		w = 1
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	x = v.X + (ndcX+1)*0.5*v.Width
	y = v.Y + (1-ndcY)*0.5*v.Height
	return x, y
}

// WorldToScreen projects a world-space point through projection and onto v.
func (v Viewport) WorldToScreen(projection mgl32.Mat4, world mgl32.Vec3) (x, y float32) {
	return v.ToScreen(projection.Mul4x1(world.Vec4(1)))
}
