package walker

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Vertex is one corner of a quad in local space.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// quadPositions is the unit quad over [-0.5, 0.5] in local X/Y at Z=0.
var quadPositions = [4]mgl32.Vec3{
	{-0.5, -0.5, 0},
	{0.5, -0.5, 0},
	{0.5, 0.5, 0},
	{-0.5, 0.5, 0},
}

// quadIndices draws the quad as two triangles.
var quadIndices = []uint16{0, 1, 2, 2, 3, 0}

// Quad is a textured unit quad with a position, rotation and scale. Frame
// selects the sub-region of the texture that is displayed; call
// RebuildGeometry after changing it.
type Quad struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation float32 // degrees about Z
	Frame    Region
	// Color multiplies the sampled texels. Defaults to ColorWhite.
	Color Color

	ctx      *RenderContext
	texture  *Texture
	vertices [4]Vertex
	screen   [4]ebiten.Vertex
}

func newQuad(ctx *RenderContext, tex *Texture, frame Region) Quad {
	q := Quad{
		Scale:   mgl32.Vec3{1, 1, 1},
		Frame:   frame,
		Color:   ColorWhite,
		ctx:     ctx,
		texture: tex,
	}
	for i, p := range quadPositions {
		q.vertices[i].Position = p
	}
	q.RebuildGeometry()
	return q
}

// RebuildGeometry writes the texture coordinates of Frame into the vertex
// buffer.
func (q *Quad) RebuildGeometry() {
	for i, c := range q.Frame.corners() {
		q.vertices[i].TexCoord = mgl32.Vec2{c[0], c[1]}
	}
}

// Vertices returns a copy of the quad's local-space vertex buffer.
func (q *Quad) Vertices() [4]Vertex {
	return q.vertices
}

// ModelMatrix returns translate(Position) · rotateZ(Rotation) · scale(Scale).
func (q *Quad) ModelMatrix() mgl32.Mat4 {
	return ModelMatrix(q.Position, q.Rotation, q.Scale)
}

// Texture returns the bound texture.
func (q *Quad) Texture() *Texture {
	return q.texture
}

// SetTexture replaces the bound texture. The previous one is deallocated.
func (q *Quad) SetTexture(tex *Texture) {
	if q.texture.Valid() && q.texture != tex {
		q.texture.Deallocate()
	}
	q.texture = tex
}

// Draw applies projection · model to the vertices and issues one indexed
// draw of the quad onto target, sampling the mip level that matches the
// quad's on-screen size.
func (q *Quad) Draw(target *ebiten.Image, projection mgl32.Mat4) {
	if !q.texture.Valid() {
		return
	}
	q.project(projection)
	src := q.texture.level(mipLevel(q.screen[:], q.texture.MipLevels()-1))
	if src != q.texture.Image {
		b := src.Bounds()
		rescaleSrc(q.screen[:], float32(b.Dx())/float32(q.texture.Width), float32(b.Dy())/float32(q.texture.Height))
	}
	q.ctx.draw(target, q.screen[:], quadIndices, src)
}

// project fills the screen-space vertex buffer for the current transform,
// with texel coordinates on the base level.
func (q *Quad) project(projection mgl32.Mat4) {
	var tw, th float32
	if q.texture != nil {
		tw, th = float32(q.texture.Width), float32(q.texture.Height)
	}
	transformVertices(q.vertices[:], q.screen[:], projection.Mul4(q.ModelMatrix()), q.ctx.viewport, tw, th, q.Color)
}

// transformVertices runs the vertex stage on the CPU: each local position is
// multiplied by mvp and mapped through the viewport, and normalized texture
// coordinates become texel coordinates on a texW×texH image. dst must be at
// least len(src) in length.
func transformVertices(src []Vertex, dst []ebiten.Vertex, mvp mgl32.Mat4, vp Viewport, texW, texH float32, tint Color) {
	// Vertex colors are premultiplied, like the textures.
	a := float32(clamp01(tint.A))
	r := float32(clamp01(tint.R)) * a
	g := float32(clamp01(tint.G)) * a
	b := float32(clamp01(tint.B)) * a
	for i := range src {
		s := &src[i]
		x, y := vp.ToScreen(mvp.Mul4x1(s.Position.Vec4(1)))
		dst[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   s.TexCoord[0] * texW,
			SrcY:   s.TexCoord[1] * texH,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
}

// mipLevel picks the level whose texel density is closest to one texel per
// pixel from above: floor(log2(texels per pixel)), clamped to [0, maxLevel].
// The quad's two edges from vertex 0 are measured and the denser one wins.
func mipLevel(v []ebiten.Vertex, maxLevel int) int {
	if len(v) < 4 || maxLevel <= 0 {
		return 0
	}
	ratio := max(texelsPerPixel(v[0], v[1]), texelsPerPixel(v[0], v[3]))
	if ratio <= 1 {
		return 0
	}
	return min(int(math.Floor(math.Log2(float64(ratio)))), maxLevel)
}

func texelsPerPixel(a, b ebiten.Vertex) float32 {
	px := float32(math.Hypot(float64(b.DstX-a.DstX), float64(b.DstY-a.DstY)))
	if px == 0 {
		return 0
	}
	tx := float32(math.Hypot(float64(b.SrcX-a.SrcX), float64(b.SrcY-a.SrcY)))
	return tx / px
}

// rescaleSrc maps base-level texel coordinates onto a smaller mip level.
func rescaleSrc(v []ebiten.Vertex, sx, sy float32) {
	for i := range v {
		v[i].SrcX *= sx
		v[i].SrcY *= sy
	}
}
