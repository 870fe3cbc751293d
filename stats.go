package badgemon

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay draws the scheduler clock, active count and pending count in
// the top-left corner. The text refreshes every ~500ms of wall-clock ticks.
type StatsOverlay struct {
	sched *Scheduler
	img   *ebiten.Image
	since float64
	dirty bool
}

// NewStatsOverlay creates an overlay reporting on s.
func NewStatsOverlay(s *Scheduler) *StatsOverlay {
	return &StatsOverlay{sched: s, dirty: true}
}

// Update accumulates tick time and marks the text for refresh.
func (o *StatsOverlay) Update(deltaMs float64) {
	o.since += deltaMs
	if o.since < 500 {
		return
	}
	o.since = 0
	o.dirty = true
}

// Draw renders the overlay onto screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// 140x48 fits four lines of debug text.
		o.img = ebiten.NewImage(140, 48)
	}
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text())
	}
	screen.DrawImage(o.img, nil)
}

func (o *StatsOverlay) text() string {
	return fmt.Sprintf("TPS: %.1f\nclock: %.0fms\nactive: %d\npending: %d",
		ebiten.ActualTPS(), o.sched.Clock(), o.sched.ActiveCount(), o.sched.PendingCount())
}
