package badgemon

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. All methods run while holding the Tasks
// baton, so they may freely touch the scheduler and node graph.
type Scene interface {
	// Start is called when the scene becomes current.
	Start(sm *SceneManager)
	// Update is called once per tick after the scheduler has advanced.
	Update(deltaMs float64)
	// Draw renders the scene. The fade overlays are drawn on top.
	Draw(screen *ebiten.Image)
	// End is called before the next scene starts. Animation is killed
	// right after it returns.
	End()
	// Run is the scene's background task. It returns the scene to switch
	// to, or nil to quit. If Run already switched scenes itself, through
	// FadeToScene, its return value is ignored.
	Run(ctx context.Context) (Scene, error)
}

// BaseScene is an embeddable Scene with no-op hooks. Its Start stores the
// manager and fades in from the previous scene's fade-out.
type BaseScene struct {
	SM    *SceneManager
	Ready *Latch
}

// Start implements Scene.
func (b *BaseScene) Start(sm *SceneManager) {
	b.SM = sm
	b.Ready = sm.FadeIn()
}

// Update implements Scene.
func (b *BaseScene) Update(float64) {}

// Draw implements Scene.
func (b *BaseScene) Draw(*ebiten.Image) {}

// End implements Scene.
func (b *BaseScene) End() {}

// Run implements Scene by waiting for the fade-in and quitting.
func (b *BaseScene) Run(ctx context.Context) (Scene, error) {
	return nil, b.SM.Await(ctx, b.Ready)
}

// SceneConfig holds the timings for scene transitions.
type SceneConfig struct {
	FadeMs       float64 // regular scene-to-scene fade
	BattleFadeMs float64 // fade into a battle
	FadeColor    Color
	Debug        bool // scheduler debug mode
}

// DefaultSceneConfig returns the stock transition timings.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		FadeMs:       200,
		BattleFadeMs: 1000,
		FadeColor:    ColorBlack,
	}
}

// SceneManager owns the scheduler, the cooperative task runtime and the
// shared fade overlays, and switches between scenes.
type SceneManager struct {
	cfg         SceneConfig
	sched       *Scheduler
	tasks       *Tasks
	fader       *Fader
	battleFader *Fader

	scene Scene
	done  atomic.Bool
}

// NewSceneManager creates a manager with no current scene. Background tasks
// are cancelled when ctx is done.
func NewSceneManager(ctx context.Context, cfg SceneConfig) *SceneManager {
	sm := &SceneManager{
		cfg:         cfg,
		sched:       NewScheduler(),
		tasks:       NewTasks(ctx),
		fader:       NewFader("fader", cfg.FadeColor, cfg.FadeMs),
		battleFader: NewFader("battle-fader", cfg.FadeColor, cfg.BattleFadeMs),
	}
	sm.sched.SetDebugMode(cfg.Debug)
	return sm
}

// Scheduler returns the animation scheduler.
func (sm *SceneManager) Scheduler() *Scheduler {
	return sm.sched
}

// Tasks returns the cooperative task runtime.
func (sm *SceneManager) Tasks() *Tasks {
	return sm.tasks
}

// Fader returns the regular scene fader.
func (sm *SceneManager) Fader() *Fader {
	return sm.fader
}

// Scene returns the current scene, or nil.
func (sm *SceneManager) Scene() Scene {
	return sm.scene
}

// Done reports whether the manager has switched to the nil scene.
func (sm *SceneManager) Done() bool {
	return sm.done.Load()
}

// Start makes first the current scene and launches the background loop that
// runs each scene's Run and switches to whatever it returns.
func (sm *SceneManager) Start(first Scene) {
	sm.tasks.Go(func(ctx context.Context) error {
		sm.SwitchScene(first)
		for sm.scene != nil {
			cur := sm.scene
			next, err := cur.Run(ctx)
			if err != nil {
				sm.SwitchScene(nil)
				return fmt.Errorf("scene %T: %w", cur, err)
			}
			if sm.scene == cur {
				sm.SwitchScene(next)
			}
		}
		return nil
	})
}

// Update advances animation by deltaMs and then updates the current scene.
// Called once per tick by the host loop.
func (sm *SceneManager) Update(deltaMs float64) {
	sm.tasks.Step(func() {
		sm.sched.Update(deltaMs)
		if sm.scene != nil {
			sm.scene.Update(deltaMs)
		}
	})
}

// Draw renders the current scene and the fade overlays.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	sm.tasks.Step(func() {
		if sm.scene != nil {
			sm.scene.Draw(screen)
		}
		sm.fader.Draw(screen)
		sm.battleFader.Draw(screen)
	})
}

// SwitchScene ends the current scene, kills all animation and starts next.
// Switching to nil stops the game. Must be called while holding the baton.
func (sm *SceneManager) SwitchScene(next Scene) {
	if sm.scene != nil {
		sm.scene.End()
	}
	sm.sched.KillAnimation()
	sm.scene = next
	if next == nil {
		sm.done.Store(true)
		return
	}
	next.Start(sm)
}

// Await suspends the calling task until l is signaled.
func (sm *SceneManager) Await(ctx context.Context, l *Latch) error {
	return sm.tasks.Await(ctx, l)
}

// FadeToScene fades the screen out, waits for the fade to finish and switches
// to next. battle selects the slower battle fade.
func (sm *SceneManager) FadeToScene(ctx context.Context, next Scene, battle bool) error {
	f := sm.fader
	if battle {
		f = sm.battleFader
	}
	done := sm.fade(f, false)
	if err := sm.Await(ctx, done); err != nil {
		return err
	}
	sm.SwitchScene(next)
	return nil
}

// FadeIn starts fading the overlay away and returns a latch signaled when
// the scene is fully visible.
func (sm *SceneManager) FadeIn() *Latch {
	// A battle fade-out is cleared at once; the regular fader takes over.
	sm.battleFader.setAlpha(0)
	return sm.fade(sm.fader, true)
}

// fade rewires f to signal a fresh rendezvous and triggers it.
func (sm *SceneManager) fade(f *Fader, fadeIn bool) *Latch {
	f.node.Detach()
	f.Reset(fadeIn)
	f.Color = sm.cfg.FadeColor
	done := NewRendezvous(f.node.Name+"-done", nil)
	f.node.AndThen(done)
	sm.sched.Trigger(f.node)
	return done.Latch()
}

// PlayEffect triggers a pre-wired graph rooted at n and suspends until n
// ends. Follow-up nodes wired after n keep running on their own.
func (sm *SceneManager) PlayEffect(ctx context.Context, n *Node) error {
	done := NewRendezvous(n.Name+"-done", nil)
	n.AndThen(done)
	defer done.Detach()
	sm.sched.Trigger(n)
	return sm.Await(ctx, done.Latch())
}

// Sleep suspends the calling task for ms milliseconds of scheduler time.
func (sm *SceneManager) Sleep(ctx context.Context, ms float64) error {
	wait := NewWait("sleep", ms)
	done := wait.AndThen(NewRendezvous("sleep-done", nil))
	sm.sched.Trigger(wait)
	return sm.Await(ctx, done.Latch())
}

// Close cancels background tasks and waits for them. Call from the host loop
// outside Update and Draw.
func (sm *SceneManager) Close() error {
	err := sm.tasks.Close()
	if err != nil && sm.cfg.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[badgemon] scene task: %v\n", err)
	}
	return err
}
