package badgemon

import "math"

// Wave selects how a cyclic node remaps its ever-growing progress.
type Wave uint8

const (
	WaveSawtooth Wave = iota // t mod 1
	WaveTriangle             // up on even cycles, down on odd cycles
	WaveSine                 // sin(2πt), in [-1, 1]
)

// Remap folds unbounded progress t into one period of the wave. WaveSine is
// not clamped to [0, 1]; callers use the negative half (a wobble offset).
func (w Wave) Remap(t float64) float64 {
	switch w {
	case WaveTriangle:
		if math.Mod(t, 2) < 1 {
			return math.Mod(t, 1)
		}
		return 1 - math.Mod(t, 1)
	case WaveSine:
		return math.Sin(2 * math.Pi * t)
	default:
		return math.Mod(t, 1)
	}
}

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	case WaveSine:
		return "sine"
	default:
		return "unknown"
	}
}

// NewCyclic wraps inner in an infinite node that repeats every ms
// milliseconds. Start, end and Reset are forwarded to inner once, so inner
// still delivers its terminal value exactly once. The node only stops through
// a forced-end edge or Scheduler.KillAnimation.
//
//	wobble := NewCyclic("wobble", 400, WaveSine,
//		NewTween("offset", 0, CurveLinear, 0, 6, setOffset))
//	fader.Ends(wobble)
func NewCyclic(name string, ms float64, wave Wave, inner *Node) *Node {
	if inner == nil {
		panic("badgemon: cyclic node needs an inner node")
	}
	n := newNode(name, NodeTypeCyclic, ms)
	n.Infinite = true
	n.Wave = wave
	n.Inner = inner
	return n
}
