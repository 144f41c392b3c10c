package walker

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a walker Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Direction is a walking direction. It doubles as the animation row selector
// of the sprite sheet.
type Direction int8

const (
	DirectionNone  Direction = -1 // no row selected yet / no input this frame
	DirectionUp    Direction = 0
	DirectionDown  Direction = 1
	DirectionLeft  Direction = 2
	DirectionRight Direction = 3
)

// directionPriority is the order in which held directions are tested each
// frame. The first pressed direction wins; the rest are ignored.
var directionPriority = [...]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

var directionNames = [...]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

// Valid reports whether d is one of the four walking directions.
func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// Delta returns the unit step for d in screen orientation (Y grows downward).
func (d Direction) Delta() (dx, dy float32) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection converts a direction name ("up", "down", "left", "right",
// case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return DirectionNone, fmt.Errorf("walker: unknown direction %q", s)
}
