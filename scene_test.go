package badgemon

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testScene records its lifecycle into a shared log and runs an optional
// script as its background task.
type testScene struct {
	BaseScene
	name    string
	log     *[]string
	run     func(ctx context.Context, sc *testScene) (Scene, error)
	updates int
}

func (sc *testScene) Start(sm *SceneManager) {
	sc.BaseScene.Start(sm)
	*sc.log = append(*sc.log, sc.name+":start")
}

func (sc *testScene) Update(float64) {
	sc.updates++
}

func (sc *testScene) End() {
	*sc.log = append(*sc.log, sc.name+":end")
}

func (sc *testScene) Run(ctx context.Context) (Scene, error) {
	if sc.run == nil {
		return sc.BaseScene.Run(ctx)
	}
	return sc.run(ctx, sc)
}

// runScenes ticks sm at 16ms until it is done.
func runScenes(t *testing.T, sm *SceneManager) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !sm.Done() {
		if time.Now().After(deadline) {
			t.Fatal("scene manager did not finish")
		}
		sm.Update(16)
		time.Sleep(time.Millisecond)
	}
}

func TestSceneManagerFadeToScene(t *testing.T) {
	sm := NewSceneManager(context.Background(), DefaultSceneConfig())
	var log []string
	var fadedInAlpha = -1.0
	var sleptFrom, sleptTo float64

	battle := &testScene{name: "battle", log: &log}
	title := &testScene{name: "title", log: &log}
	title.run = func(ctx context.Context, sc *testScene) (Scene, error) {
		if err := sc.SM.Await(ctx, sc.Ready); err != nil {
			return nil, err
		}
		fadedInAlpha = sc.SM.Fader().Alpha()
		sleptFrom = sc.SM.Scheduler().Clock()
		if err := sc.SM.Sleep(ctx, 100); err != nil {
			return nil, err
		}
		sleptTo = sc.SM.Scheduler().Clock()
		return nil, sc.SM.FadeToScene(ctx, battle, true)
	}

	sm.Start(title)
	runScenes(t, sm)
	if err := sm.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}

	want := []string{"title:start", "title:end", "battle:start", "battle:end"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if fadedInAlpha != 0 {
		t.Errorf("alpha after fade-in = %v, want 0", fadedInAlpha)
	}
	if sleptTo-sleptFrom < 100 {
		t.Errorf("slept %vms, want >= 100", sleptTo-sleptFrom)
	}
	if title.updates == 0 || battle.updates == 0 {
		t.Errorf("scene updates = %d/%d, want both > 0", title.updates, battle.updates)
	}
	if sm.Scene() != nil {
		t.Error("current scene should be nil after quitting")
	}
}

func TestSceneManagerRunReturnsNext(t *testing.T) {
	sm := NewSceneManager(context.Background(), DefaultSceneConfig())
	var log []string
	second := &testScene{name: "second", log: &log}
	first := &testScene{name: "first", log: &log}
	first.run = func(context.Context, *testScene) (Scene, error) {
		return second, nil
	}

	sm.Start(first)
	runScenes(t, sm)
	if err := sm.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}
	if len(log) != 4 || log[2] != "second:start" {
		t.Errorf("log = %v", log)
	}
}

func TestSceneManagerRunError(t *testing.T) {
	sm := NewSceneManager(context.Background(), DefaultSceneConfig())
	lost := errors.New("lost")
	var log []string
	sc := &testScene{name: "broken", log: &log}
	sc.run = func(context.Context, *testScene) (Scene, error) {
		return nil, lost
	}

	sm.Start(sc)
	runScenes(t, sm)
	if err := sm.Close(); !errors.Is(err, lost) {
		t.Errorf("Close = %v, want lost", err)
	}
	if len(log) != 2 || log[1] != "broken:end" {
		t.Errorf("log = %v", log)
	}
}

func TestSceneManagerPlayEffect(t *testing.T) {
	sm := NewSceneManager(context.Background(), DefaultSceneConfig())
	var log []string
	var flash float64
	var followStarted bool
	var successors int

	sc := &testScene{name: "effect", log: &log}
	sc.run = func(ctx context.Context, sc *testScene) (Scene, error) {
		effect := NewTween("flash", 50, CurveLinear, 0, 1, func(v float64) { flash = v })
		follow := NewWait("after", 30)
		effect.AndThen(follow)
		if err := sc.SM.PlayEffect(ctx, effect); err != nil {
			return nil, err
		}
		followStarted = follow.Started()
		successors = len(effect.Successors())
		return nil, nil
	}

	sm.Start(sc)
	runScenes(t, sm)
	if err := sm.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}
	if flash != 1 {
		t.Errorf("flash = %v, want 1", flash)
	}
	if !followStarted {
		t.Error("follow-up node should start when the effect ends")
	}
	if successors != 1 {
		t.Errorf("effect successors = %d, want 1 after the rendezvous is detached", successors)
	}
}

func TestSceneManagerCloseCancelsScenes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sm := NewSceneManager(ctx, DefaultSceneConfig())
	var log []string
	sc := &testScene{name: "stuck", log: &log}
	sc.run = func(ctx context.Context, sc *testScene) (Scene, error) {
		return nil, sc.SM.Await(ctx, NewLatch())
	}
	sm.Start(sc)
	cancel()
	if err := sm.Close(); err != nil {
		t.Errorf("Close = %v, want nil after cancellation", err)
	}
	if !sm.Done() {
		t.Error("manager should be done after its scene was cancelled")
	}
}

func TestSceneManagerCloseWhileAwaiting(t *testing.T) {
	sm := NewSceneManager(context.Background(), DefaultSceneConfig())
	var log []string
	sc := &testScene{name: "idle", log: &log}
	sc.run = func(ctx context.Context, sc *testScene) (Scene, error) {
		return nil, sc.SM.Await(ctx, NewLatch())
	}
	sm.Start(sc)
	sm.Update(16)
	if err := sm.Close(); err != nil {
		t.Errorf("Close = %v, want nil when closing a suspended scene", err)
	}
}

func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()
	if cfg.FadeMs != 200 || cfg.BattleFadeMs != 1000 {
		t.Errorf("fade timings = %v/%v, want 200/1000", cfg.FadeMs, cfg.BattleFadeMs)
	}
	if cfg.FadeColor != ColorBlack {
		t.Errorf("FadeColor = %v, want black", cfg.FadeColor)
	}
}

// --- Fader ---

func TestFaderDirections(t *testing.T) {
	s := NewScheduler()
	f := NewFader("fader", ColorBlack, 100)

	f.Reset(true)
	if f.Alpha() != 1 {
		t.Fatalf("fade-in starts at %v, want 1", f.Alpha())
	}
	s.Trigger(f.Node())
	s.Update(50)
	if f.Alpha() != 0.5 {
		t.Errorf("mid fade-in alpha = %v, want 0.5", f.Alpha())
	}
	s.Update(50)
	if f.Alpha() != 0 {
		t.Errorf("end fade-in alpha = %v, want 0", f.Alpha())
	}

	f.SetLength(200)
	f.Reset(false)
	if f.Alpha() != 0 {
		t.Fatalf("fade-out starts at %v, want 0", f.Alpha())
	}
	s.Trigger(f.Node())
	s.Update(50)
	if f.Alpha() != 0.25 {
		t.Errorf("quarter fade-out alpha = %v, want 0.25", f.Alpha())
	}
	s.Update(150)
	if f.Alpha() != 1 {
		t.Errorf("end fade-out alpha = %v, want 1", f.Alpha())
	}
}

func TestColorScalePremultiplies(t *testing.T) {
	cs := Color{R: 1, G: 0.5, B: 0, A: 1}.colorScale(0.5)
	if cs.R() != 0.5 || cs.G() != 0.25 || cs.B() != 0 || cs.A() != 0.5 {
		t.Errorf("colorScale = (%v, %v, %v, %v), want (0.5, 0.25, 0, 0.5)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}
