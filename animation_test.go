package badgemon

import (
	"math"
	"testing"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	s := NewScheduler()
	hp := 80.0
	n := TweenValue("hp", &hp, 20, 100, CurveLinear)

	s.Trigger(n)
	s.Update(50)
	if hp != 50 {
		t.Errorf("mid hp = %v, want 50", hp)
	}
	s.Update(50)
	if hp != 20 {
		t.Errorf("hp = %v, want 20", hp)
	}
}

func TestTweenPositionReachesTarget(t *testing.T) {
	s := NewScheduler()
	pos := Vec2{X: 10, Y: 20}
	g := TweenPosition("slide", &pos, Vec2{X: 100, Y: 200}, 300, CurveSmoothstep)

	s.Trigger(g.Start)
	s.Update(150)
	if pos.X <= 10 || pos.X >= 100 {
		t.Errorf("mid X = %v, want strictly between 10 and 100", pos.X)
	}
	s.Update(150)
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("pos = %+v, want {100 200}", pos)
	}
	if !g.Join.Ended() {
		t.Error("join should end with the last member")
	}
}

func TestTweenColorReachesTarget(t *testing.T) {
	s := NewScheduler()
	c := ColorWhite
	g := TweenColor("tint", &c, Color{R: 1, G: 0, B: 0, A: 0.5}, 200, CurveEaseOut)

	s.Trigger(g.Start)
	s.Update(200)
	want := Color{R: 1, G: 0, B: 0, A: 0.5}
	if c != want {
		t.Errorf("color = %+v, want %+v", c, want)
	}
}

func TestTweenValueReadsFieldOnStart(t *testing.T) {
	s := NewScheduler()
	x := 0.0
	n := TweenValue("x", &x, 100, 100, CurveLinear)
	x = 40 // moved after construction

	s.Trigger(n)
	if x != 40 {
		t.Fatalf("start value = %v, want 40", x)
	}
	s.Update(50)
	if x != 70 {
		t.Errorf("mid value = %v, want 70", x)
	}
	s.Update(50)

	x = 20
	n.Reset()
	s.Trigger(n)
	s.Update(50)
	if x != 60 {
		t.Errorf("replayed mid value = %v, want 60", x)
	}
}

func TestParallelJoinsSlowestMember(t *testing.T) {
	s := NewScheduler()
	fast := NewWait("fast", 100)
	slow := NewWait("slow", 300)
	g := Parallel("both", fast, slow)
	after := g.AndThen(NewWait("after", 0))

	s.Trigger(g.Start)
	s.Update(200)
	if !fast.Ended() || slow.Ended() {
		t.Fatal("fast should be done and slow still running")
	}
	if after.Started() {
		t.Fatal("after must wait for the slowest member")
	}
	s.Update(100)
	if !after.Ended() {
		t.Error("after should run once both members ended")
	}
}

func TestParallelEmpty(t *testing.T) {
	s := NewScheduler()
	g := Parallel("none")
	s.Trigger(g.Start)
	s.Update(1)
	if !g.Join.Ended() {
		t.Error("empty group should join immediately")
	}
}

func TestTweenGroupReset(t *testing.T) {
	s := NewScheduler()
	v := 0.0
	g := Parallel("grp", TweenValue("v", &v, 10, 100, CurveLinear))
	s.Trigger(g.Start)
	s.Update(100)
	if !g.Join.Ended() {
		t.Fatal("group should have ended")
	}

	g.Reset()
	if g.Start.Started() || g.Join.Started() || g.Start.Successors()[0].Started() {
		t.Fatal("Reset should re-arm every node in the group")
	}
	v = 0
	s.Trigger(g.Start)
	s.Update(50)
	if v != 5 {
		t.Errorf("replayed v = %v, want 5", v)
	}
}

func TestEaseTween(t *testing.T) {
	s := NewScheduler()
	var y float64
	n := NewEaseTween("bounce", 400, ease.OutBounce, 0, 40, func(v float64) { y = v })
	if n.Curve != CurveEase {
		t.Fatalf("Curve = %s, want ease", n.Curve)
	}

	s.Trigger(n)
	s.Update(200)
	want := float64(ease.OutBounce(0.5, 0, 40, 1))
	if math.Abs(y-want) > 1e-4 {
		t.Errorf("mid y = %v, want ~%v", y, want)
	}
	s.Update(200)
	if y != 40 {
		t.Errorf("end y = %v, want exactly 40", y)
	}
}

func TestEaseTweenNilFuncIsLinear(t *testing.T) {
	s := NewScheduler()
	var v float64
	n := NewEaseTween("lin", 100, nil, 0, 10, func(x float64) { v = x })
	s.Trigger(n)
	s.Update(25)
	if math.Abs(v-2.5) > 1e-5 {
		t.Errorf("v = %v, want ~2.5", v)
	}
}

func TestEaseTweenRestartsCleanly(t *testing.T) {
	s := NewScheduler()
	var v float64
	n := NewEaseTween("in", 100, ease.InQuad, 0, 100, func(x float64) { v = x })
	s.Trigger(n)
	s.Update(100)
	n.Reset()
	s.Trigger(n)
	if v != 0 {
		t.Fatalf("restart value = %v, want 0", v)
	}
	s.Update(50)
	if math.Abs(v-25) > 1e-3 {
		t.Errorf("v = %v, want ~25", v)
	}
}

func TestTweenFromDrivesGweenTween(t *testing.T) {
	s := NewScheduler()
	var v float64
	n := TweenFrom("gw", 200, gween.New(0, 100, 200, ease.Linear), func(x float64) { v = x })

	s.Trigger(n)
	if v != 0 {
		t.Fatalf("start value = %v, want 0", v)
	}
	s.Update(100)
	if math.Abs(v-50) > 1e-3 {
		t.Errorf("mid value = %v, want ~50", v)
	}
	s.Update(100)
	if math.Abs(v-100) > 1e-3 {
		t.Errorf("end value = %v, want ~100", v)
	}

	n.Reset()
	s.Trigger(n)
	if v != 0 {
		t.Errorf("value after Reset = %v, want 0", v)
	}
}
