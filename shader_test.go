package walker

import (
	"errors"
	"strings"
	"testing"
)

func TestLinkVertexLayout(t *testing.T) {
	if err := linkVertexLayout(quadVertexLayout); err != nil {
		t.Fatalf("quad layout should link: %v", err)
	}

	tests := []struct {
		name   string
		layout []VertexAttribute
		want   string
	}{
		{"missing texcoord", []VertexAttribute{{"position", 0, 3}}, "texcoord"},
		{"position as vec2", []VertexAttribute{{"position", 0, 2}, {"texcoord", 1, 2}}, "3"},
		{"duplicate location", []VertexAttribute{{"position", 0, 3}, {"uv", 0, 2}}, "location 0"},
		{"swapped locations", []VertexAttribute{{"texcoord", 0, 2}, {"position", 1, 3}}, "components"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := linkVertexLayout(tt.layout)
			if !errors.Is(err, ErrShaderLink) {
				t.Fatalf("err = %v, want ErrShaderLink", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestNewRenderContextCompileError(t *testing.T) {
	_, err := newRenderContext(NewViewport(8, 8), []byte("//kage:unit pixels\npackage main\nfunc Fragment("), quadVertexLayout)
	if !errors.Is(err, ErrShaderCompile) {
		t.Fatalf("err = %v, want ErrShaderCompile", err)
	}
}

func TestQuadShaderSource(t *testing.T) {
	if !strings.HasPrefix(quadShaderSrc, "//kage:unit pixels") {
		t.Error("quad shader must use pixel units")
	}
	if !strings.Contains(quadShaderSrc, "clamp(") {
		t.Error("quad shader must clamp samples to the image edge")
	}
}

func TestRenderContextDrawSkipsInvalidTexture(t *testing.T) {
	c := &RenderContext{viewport: NewViewport(8, 8)}
	c.draw(nil, nil, quadIndices, nil)
	if c.DrawCalls() != 0 {
		t.Errorf("DrawCalls = %d, want 0", c.DrawCalls())
	}
}

func TestNewRenderContextCompilesQuadShader(t *testing.T) {
	c, err := NewRenderContext(NewViewport(800, 600))
	if err != nil {
		t.Fatalf("NewRenderContext: %v", err)
	}
	defer c.Deallocate()
	if c.shader == nil {
		t.Fatal("shader not set")
	}
	if c.Viewport() != NewViewport(800, 600) {
		t.Errorf("Viewport = %+v", c.Viewport())
	}
}
