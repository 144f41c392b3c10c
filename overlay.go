package walker

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlay shows FPS/TPS and the walk-cycle state in the top-left corner.
// The text is refreshed roughly every half second.
type overlay struct {
	img        *ebiten.Image
	text       string
	sinceFlush float64
}

// 160x48 fits "FPS: 60.0\nTPS: 60.0\nrow: right col: 3".
const (
	overlayWidth   = 160
	overlayHeight  = 48
	overlayRefresh = 0.5
)

// overlayText formats the overlay contents.
func overlayText(fps, tps float64, anim *Animator) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nrow: %s col: %d", fps, tps, anim.Row(), anim.Column())
}

// update refreshes the text when the refresh interval has elapsed.
func (o *overlay) update(dt float64, anim *Animator) {
	o.sinceFlush += dt
	if o.text != "" && o.sinceFlush < overlayRefresh {
		return
	}
	o.sinceFlush = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), anim)
}

// draw renders the overlay onto screen.
func (o *overlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		o.img = ebiten.NewImage(overlayWidth, overlayHeight)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
