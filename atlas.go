package walker

import (
	"fmt"
	"image"
	"math"
)

// Sprite sheets are laid out as a 4×4 grid: one row per direction, four
// walk frames per row.
const (
	AtlasColumns = 4
	AtlasRows    = 4
)

// FrameSize is the normalized width and height of one atlas cell.
const FrameSize float32 = 1.0 / AtlasColumns

// Region is a normalized sub-rectangle of a texture. (X, Y) is the top-left
// corner and (W, H) the size, all in [0, 1].
type Region struct {
	X, Y, W, H float32
}

// FullRegion covers the whole texture.
var FullRegion = Region{0, 0, 1, 1}

// atlasRows maps each direction to its grid row, top to bottom.
var atlasRows = [...]int{
	DirectionUp:    0,
	DirectionRight: 1,
	DirectionLeft:  2,
	DirectionDown:  3,
}

// AtlasRow returns the grid row that animates direction d. Directions
// outside the four walking directions map to the top row.
func AtlasRow(d Direction) int {
	if !d.Valid() {
		return 0
	}
	return atlasRows[d]
}

// RowOffset returns texY, the normalized top edge of the row that animates
// direction d: up 0.0, right 0.25, left 0.5, down 0.75.
func RowOffset(d Direction) float32 {
	return float32(AtlasRow(d)) * FrameSize
}

// GridRegion returns the region of cell (col, row) in a cols×rows grid.
func GridRegion(col, row, cols, rows int) (Region, error) {
	if cols <= 0 || rows <= 0 {
		return Region{}, fmt.Errorf("walker: invalid atlas grid %dx%d", cols, rows)
	}
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return Region{}, fmt.Errorf("walker: atlas cell (%d,%d) outside %dx%d grid", col, row, cols, rows)
	}
	w := 1 / float32(cols)
	h := 1 / float32(rows)
	return Region{X: float32(col) * w, Y: float32(row) * h, W: w, H: h}, nil
}

// Pixels converts r into a pixel rectangle on a texture of the given size.
func (r Region) Pixels(width, height int) image.Rectangle {
	fw, fh := float64(width), float64(height)
	x0 := int(math.Round(float64(r.X) * fw))
	y0 := int(math.Round(float64(r.Y) * fh))
	x1 := int(math.Round(float64(r.X+r.W) * fw))
	y1 := int(math.Round(float64(r.Y+r.H) * fh))
	return image.Rect(x0, y0, x1, y1)
}

// corners returns the texture coordinates of r in quad vertex order. Under
// the Y-down projection the quad's first vertex is its top-left corner.
func (r Region) corners() [4][2]float32 {
	return [4][2]float32{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}
