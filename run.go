package badgemon

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	TPS       int  // ticks per second; 0 keeps ebiten's default (60)
	ShowStats bool // draw the scheduler stats overlay
}

// Run opens a window and drives sm from ebiten's game loop: each tick
// advances the scheduler by one tick's worth of milliseconds. Blocks until the
// window is closed or the scene manager switches to a nil scene, then cancels
// background tasks and returns the first error.
func Run(sm *SceneManager, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("badgemon: run: window size must be positive")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	h := &host{sm: sm, cfg: cfg}
	if cfg.ShowStats {
		h.stats = NewStatsOverlay(sm.Scheduler())
	}
	err := ebiten.RunGame(h)
	if cerr := sm.Close(); err == nil {
		err = cerr
	}
	return err
}

// host adapts a SceneManager to ebiten.Game.
type host struct {
	sm    *SceneManager
	cfg   RunConfig
	stats *StatsOverlay
}

// tickMs returns the length of one tick in milliseconds.
func tickMs() float64 {
	return 1000 / float64(ebiten.TPS())
}

func (h *host) Update() error {
	if h.sm.Done() {
		return ebiten.Termination
	}
	dt := tickMs()
	h.sm.Update(dt)
	if h.stats != nil {
		h.stats.Update(dt)
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.sm.Draw(screen)
	if h.stats != nil {
		h.stats.Draw(screen)
	}
}

func (h *host) Layout(int, int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}
