package badgemon

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewEaseTween creates a tween node that interpolates with one of gween's
// easing functions instead of a built-in Curve:
//
//	NewEaseTween("bounce", 600, ease.OutBounce, 0, 40, setY)
//
// Easing runs in float32, so these tweens are not bit-for-bit reproducible the
// way the built-in curves are.
func NewEaseTween(name string, ms float64, fn ease.TweenFunc, from, to float64, editor func(float64)) *Node {
	if fn == nil {
		fn = ease.Linear
	}
	n := NewTween(name, ms, CurveEase, from, to, editor)
	n.ease = fn
	return n
}

// TweenFrom wraps an existing gween tween as a custom node. The tween's
// duration must be in milliseconds; node progress is fed to it as elapsed
// time, so a node longer than the tween holds the end value. Reset rewinds
// the tween.
func TweenFrom(name string, ms float64, tw *gween.Tween, editor func(float64)) *Node {
	n := NewNode(name, ms)
	n.OnUpdate = func(t float64) {
		v, _ := tw.Set(float32(min(t, 1) * ms))
		if editor != nil {
			editor(float64(v))
		}
	}
	n.OnReset = tw.Reset
	return n
}

// TweenGroup is a set of nodes that start together from Start and are
// joined by Join, which starts once every member has ended. Trigger Start;
// wire follow-ups after Join.
type TweenGroup struct {
	Start *Node
	Join  *Node
}

// Parallel wraps members in a zero-length starter and joiner.
func Parallel(name string, members ...*Node) *TweenGroup {
	g := &TweenGroup{
		Start: NewWait(name+"-start", 0),
		Join:  NewWait(name+"-join", 0),
	}
	if len(members) == 0 {
		g.Start.AndThen(g.Join)
		return g
	}
	for _, m := range members {
		g.Start.AndThen(m).AndThen(g.Join)
	}
	return g
}

// AndThen makes next start once the whole group has ended. Returns next.
func (g *TweenGroup) AndThen(next *Node) *Node {
	return g.Join.AndThen(next)
}

// Reset re-arms the starter, the joiner and every member.
func (g *TweenGroup) Reset() {
	g.Start.Reset()
	for _, m := range g.Start.next {
		m.Reset()
	}
	g.Join.Reset()
}

// TweenValue creates a tween node that animates *field to the target over ms
// milliseconds. The start value is read from *field each time the node
// starts, so a replayed tween continues from wherever the field is.
func TweenValue(name string, field *float64, to, ms float64, curve Curve) *Node {
	n := NewTween(name, ms, curve, *field, to, func(v float64) { *field = v })
	n.from = func() float64 { return *field }
	return n
}

// TweenPosition creates a TweenGroup that animates pos.X and pos.Y to the
// target over ms milliseconds.
func TweenPosition(name string, pos *Vec2, to Vec2, ms float64, curve Curve) *TweenGroup {
	return Parallel(name,
		TweenValue(name+"-x", &pos.X, to.X, ms, curve),
		TweenValue(name+"-y", &pos.Y, to.Y, ms, curve),
	)
}

// TweenColor creates a TweenGroup that animates all four components of c to
// the target color over ms milliseconds.
func TweenColor(name string, c *Color, to Color, ms float64, curve Curve) *TweenGroup {
	return Parallel(name,
		TweenValue(name+"-r", &c.R, to.R, ms, curve),
		TweenValue(name+"-g", &c.G, to.G, ms, curve),
		TweenValue(name+"-b", &c.B, to.B, ms, curve),
		TweenValue(name+"-a", &c.A, to.A, ms, curve),
	)
}
