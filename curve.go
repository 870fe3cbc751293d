package badgemon

import "math"

// Curve selects the interpolation used by a tween node. Every curve is a pure
// function of (start, end, t); none of them keep state between calls.
type Curve uint8

const (
	CurveLinear     Curve = iota // a + (b-a)*t
	CurveSmoothstep              // t*t*(3-2t), then linear
	CurveEaseIn                  // slow start, fast finish
	CurveEaseOut                 // fast start, slow finish
	CurveNoise                   // deterministic hash noise in [a, b]
	CurveEase                    // a gween easing function (see NewEaseTween)
)

// CurveFunc maps progress t and two endpoints to an interpolated value.
type CurveFunc func(a, b, t float64) float64

// curveFuncs is indexed by Curve. CurveEase has no entry; it is evaluated by
// the node that owns the easing function.
var curveFuncs = [...]CurveFunc{
	CurveLinear:     Lerp,
	CurveSmoothstep: Smoothstep,
	CurveEaseIn:     EaseIn,
	CurveEaseOut:    EaseOut,
	CurveNoise:      Noise,
}

// Eval evaluates the curve. Unknown curves and CurveEase fall back to Lerp.
func (c Curve) Eval(a, b, t float64) float64 {
	if int(c) < len(curveFuncs) {
		if fn := curveFuncs[c]; fn != nil {
			return fn(a, b, t)
		}
	}
	return Lerp(a, b, t)
}

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveSmoothstep:
		return "smoothstep"
	case CurveEaseIn:
		return "ease-in"
	case CurveEaseOut:
		return "ease-out"
	case CurveNoise:
		return "noise"
	case CurveEase:
		return "ease"
	default:
		return "unknown"
	}
}

// The explicit float64 conversions below stop the compiler from fusing
// multiply-add pairs, which would change results on arm64 and friends.

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}

// Smoothstep remaps t with t²(3-2t) before interpolating.
func Smoothstep(a, b, t float64) float64 {
	return Lerp(a, b, t*t*(3-float64(2*t)))
}

// EaseIn remaps t with t²·0.5·(3-t) before interpolating.
func EaseIn(a, b, t float64) float64 {
	return Lerp(a, b, t*t*0.5*(3-t))
}

// EaseOut is EaseIn shifted by one: ((t+1)²·0.5·(3-(t+1))) - 1.
func EaseOut(a, b, t float64) float64 {
	x := t + 1
	return Lerp(a, b, float64(x*x*0.5*(3-x))-1)
}

// Noise returns a pseudo-random value in [a, b] that depends only on its
// inputs. Feeding it unbounded progress (an infinite tween) produces jitter.
func Noise(a, b, t float64) float64 {
	return Lerp(a, b, hashWithoutSine(Lerp(a, b*100, t)))
}

// hashWithoutSine is Dave Hoskins' sine-free 1D hash. Output is in [0, 1).
func hashWithoutSine(p float64) float64 {
	q := frac(p * 0.1031)
	return frac(q * (q + 33.33) * 2)
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
