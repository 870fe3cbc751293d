package badgemon

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Fader is a full-screen fade to a solid color. It is backed by a single
// tween node that is reused across transitions: callers Detach it, Reset it
// in the direction they want, wire a rendezvous after it, and trigger it.
type Fader struct {
	Color Color

	node  *Node
	alpha float64
}

// NewFader creates a fader that fades out (to opaque color) over ms
// milliseconds.
func NewFader(name string, color Color, ms float64) *Fader {
	f := &Fader{Color: color}
	f.node = NewTween(name, ms, CurveLinear, 0, 1, f.setAlpha)
	return f
}

func (f *Fader) setAlpha(a float64) {
	f.alpha = a
}

// Node returns the tween node driving the fade.
func (f *Fader) Node() *Node {
	return f.node
}

// Alpha returns the overlay opacity in [0, 1].
func (f *Fader) Alpha() float64 {
	return f.alpha
}

// SetLength changes how long the next fade takes.
func (f *Fader) SetLength(ms float64) {
	f.node.SetDuration(ms)
}

// Reset re-arms the fade. A fade-in goes from opaque to clear; a fade-out
// from clear to opaque. The overlay jumps to the starting opacity.
func (f *Fader) Reset(fadeIn bool) {
	f.node.Reset()
	if fadeIn {
		f.node.From, f.node.To = 1, 0
	} else {
		f.node.From, f.node.To = 0, 1
	}
	f.alpha = f.node.From
}

// Draw fills screen with the fade color at the current opacity.
func (f *Fader) Draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	op.ColorScale = f.Color.colorScale(f.alpha)
	screen.DrawImage(whitePixel(), op)
}

// pixel is a 1x1 white image, created on first draw.
var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}
