package walker

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader source ---
// Ebitengine owns the GPU vertex stage, so projection·model is applied on
// the CPU (transformVertices) and the shader only implements the fragment
// stage: one bound texture, sampled bilinearly with clamp-to-edge
// addressing, returned unmodified. Textures are premultiplied, so
// source-over blending matches straight-alpha SRC_ALPHA/ONE_MINUS_SRC_ALPHA.

const quadShaderSrc = `//kage:unit pixels
package main

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	lo := origin + 0.5
	hi := origin + size - 0.5

	p := src - 0.5
	f := fract(p)
	p0 := floor(p) + 0.5

	c00 := imageSrc0UnsafeAt(clamp(p0, lo, hi))
	c10 := imageSrc0UnsafeAt(clamp(p0+vec2(1, 0), lo, hi))
	c01 := imageSrc0UnsafeAt(clamp(p0+vec2(0, 1), lo, hi))
	c11 := imageSrc0UnsafeAt(clamp(p0+vec2(1, 1), lo, hi))
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}
`

// VertexAttribute describes one input of the quad vertex stage.
type VertexAttribute struct {
	Name     string
	Location int
	Size     int // float components
}

// vertexStageInputs is what the vertex stage consumes: position (vec3) at
// location 0 and texcoord (vec2) at location 1.
var vertexStageInputs = []VertexAttribute{
	{Name: "position", Location: 0, Size: 3},
	{Name: "texcoord", Location: 1, Size: 2},
}

// quadVertexLayout is the layout of Vertex as uploaded by Quad.
var quadVertexLayout = []VertexAttribute{
	{Name: "position", Location: 0, Size: 3},
	{Name: "texcoord", Location: 1, Size: 2},
}

// RenderContext is the shader program plus viewport shared by every
// drawable. It is created once at startup and passed to each Quad.
type RenderContext struct {
	shader   *ebiten.Shader
	viewport Viewport
	op       ebiten.DrawTrianglesShaderOptions

	drawCalls int
}

// NewRenderContext compiles the quad shader and links it against the quad
// vertex layout. Failures wrap ErrShaderCompile or ErrShaderLink.
func NewRenderContext(viewport Viewport) (*RenderContext, error) {
	return newRenderContext(viewport, []byte(quadShaderSrc), quadVertexLayout)
}

func newRenderContext(viewport Viewport, src []byte, layout []VertexAttribute) (*RenderContext, error) {
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: fragment: %w", ErrShaderCompile, err)
	}
	if err := linkVertexLayout(layout); err != nil {
		shader.Deallocate()
		return nil, err
	}
	c := &RenderContext{shader: shader, viewport: viewport}
	c.op.Blend = ebiten.BlendSourceOver
	return c, nil
}

// linkVertexLayout checks that layout supplies every vertex stage input at
// the expected location and size.
func linkVertexLayout(layout []VertexAttribute) error {
	byLoc := make(map[int]VertexAttribute, len(layout))
	for _, a := range layout {
		if prev, dup := byLoc[a.Location]; dup {
			return fmt.Errorf("%w: location %d bound to both %q and %q", ErrShaderLink, a.Location, prev.Name, a.Name)
		}
		byLoc[a.Location] = a
	}
	for _, in := range vertexStageInputs {
		a, ok := byLoc[in.Location]
		if !ok {
			return fmt.Errorf("%w: no attribute for %q at location %d", ErrShaderLink, in.Name, in.Location)
		}
		if a.Size != in.Size {
			return fmt.Errorf("%w: %q at location %d has %d components, want %d",
				ErrShaderLink, a.Name, in.Location, a.Size, in.Size)
		}
	}
	return nil
}

// Viewport returns the destination rectangle drawables map onto.
func (c *RenderContext) Viewport() Viewport {
	return c.viewport
}

// DrawCalls returns the number of draw calls issued since the last call to
// resetDrawCalls.
func (c *RenderContext) DrawCalls() int {
	return c.drawCalls
}

func (c *RenderContext) resetDrawCalls() {
	c.drawCalls = 0
}

// draw issues one indexed triangle draw of vertices sampling src.
func (c *RenderContext) draw(target *ebiten.Image, vertices []ebiten.Vertex, indices []uint16, src *ebiten.Image) {
	if c.shader == nil || src == nil {
		return
	}
	c.op.Images[0] = src
	target.DrawTrianglesShader(vertices, indices, c.shader, &c.op)
	c.op.Images[0] = nil
	c.drawCalls++
}

// Deallocate releases the shader.
func (c *RenderContext) Deallocate() {
	if c.shader != nil {
		c.shader.Deallocate()
		c.shader = nil
	}
}
