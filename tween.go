package badgemon

import "github.com/tanema/gween"

// NewTween creates a leaf node that evaluates curve between from and to each
// tick and hands the result to editor. The editor always sees exactly from
// when the node starts and exactly to when it ends, even when the node is
// zero-length or ended early by a forced-end edge.
//
// The editor owns whatever it mutates (a color, an offset, a rotation); the
// scheduler never looks at the value.
func NewTween(name string, ms float64, curve Curve, from, to float64, editor func(float64)) *Node {
	n := newNode(name, NodeTypeTween, ms)
	n.Curve = curve
	n.From = from
	n.To = to
	n.Editor = editor
	return n
}

// value evaluates the node's curve at progress t.
func (n *Node) value(t float64) float64 {
	if n.Curve == CurveEase && n.ease != nil {
		if n.gw == nil {
			// Normalized duration: progress maps straight onto tween time.
			n.gw = gween.New(float32(n.From), float32(n.To), 1, n.ease)
		}
		v, _ := n.gw.Set(float32(t))
		return float64(v)
	}
	return n.Curve.Eval(n.From, n.To, t)
}

func (n *Node) edit(v float64) {
	if n.Editor != nil {
		n.Editor(v)
	}
}
