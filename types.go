package badgemon

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// colorScale converts c to a premultiplied ebiten.ColorScale, multiplying the
// alpha channel by alpha.
func (c Color) colorScale(alpha float64) ebiten.ColorScale {
	a := float32(c.A * alpha)
	var cs ebiten.ColorScale
	cs.SetR(float32(c.R) * a)
	cs.SetG(float32(c.G) * a)
	cs.SetB(float32(c.B) * a)
	cs.SetA(a)
	return cs
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes the behavior of a timeline Node.
type NodeType uint8

const (
	NodeTypeWait       NodeType = iota // no effect; used as a starter or joiner
	NodeTypeCustom                     // behavior supplied by On* callbacks
	NodeTypeTween                      // evaluates a Curve and calls Editor
	NodeTypeCyclic                     // remaps unbounded progress for an inner node
	NodeTypeRendezvous                 // signals a Latch when it ends
)

// String returns the node type name.
func (t NodeType) String() string {
	switch t {
	case NodeTypeWait:
		return "wait"
	case NodeTypeCustom:
		return "custom"
	case NodeTypeTween:
		return "tween"
	case NodeTypeCyclic:
		return "cyclic"
	case NodeTypeRendezvous:
		return "rendezvous"
	default:
		return "unknown"
	}
}

// EdgeKind identifies one of the two directed relations between nodes.
type EdgeKind uint8

const (
	EdgeStartAfter EdgeKind = iota // to starts once from (and its siblings) end
	EdgeForcedEnd                  // to is ended early once from ends
)
