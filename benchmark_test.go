package badgemon

import (
	"testing"
)

// setupBenchScheduler triggers n infinite tweens that each write into a
// shared sink value.
func setupBenchScheduler(n int, curve Curve) *Scheduler {
	s := NewScheduler()
	var sink float64
	for i := 0; i < n; i++ {
		tw := NewTween("tw", float64(100+i%400), curve, 0, 1, func(v float64) { sink = v })
		tw.Infinite = true
		s.Trigger(tw)
	}
	_ = sink
	return s
}

// --- Update Benchmarks ---

func BenchmarkUpdate_1000Tweens_Linear(b *testing.B) {
	s := setupBenchScheduler(1000, CurveLinear)
	s.Update(16) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Update(16)
	}
}

func BenchmarkUpdate_1000Tweens_Noise(b *testing.B) {
	s := setupBenchScheduler(1000, CurveNoise)
	s.Update(16)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Update(16)
	}
}

func BenchmarkUpdate_1000Cyclic(b *testing.B) {
	s := NewScheduler()
	var sink float64
	for i := 0; i < 1000; i++ {
		s.Trigger(NewCyclic("loop", 400, Wave(i%3),
			NewTween("inner", 0, CurveSmoothstep, 0, 1, func(v float64) { sink = v })))
	}
	_ = sink
	s.Update(16)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Update(16)
	}
}

// --- Cascade Benchmarks ---

// BenchmarkCascade_Chain1000 replays a 1000-node zero-length chain, which
// resolves entirely inside one Update.
func BenchmarkCascade_Chain1000(b *testing.B) {
	s := NewScheduler()
	nodes := make([]*Node, 1000)
	for i := range nodes {
		nodes[i] = NewWait("link", 0)
		if i > 0 {
			nodes[i-1].AndThen(nodes[i])
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, n := range nodes {
			n.Reset()
		}
		s.Trigger(nodes[0])
		s.Update(1)
	}
}

// BenchmarkCascade_FanIn1000 ends 1000 staggered predecessors of one joiner.
func BenchmarkCascade_FanIn1000(b *testing.B) {
	s := NewScheduler()
	join := NewWait("join", 0)
	preds := make([]*Node, 1000)
	for i := range preds {
		preds[i] = NewWait("pred", float64(i))
		preds[i].AndThen(join)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		join.Reset()
		for _, p := range preds {
			p.Reset()
			s.Trigger(p)
		}
		s.Update(1000)
	}
}

// --- Curve Benchmarks ---

func BenchmarkCurve_Noise(b *testing.B) {
	var v float64
	for i := 0; i < b.N; i++ {
		v = Noise(-1, 1, float64(i)*0.01)
	}
	_ = v
}

func BenchmarkCurve_Smoothstep(b *testing.B) {
	var v float64
	for i := 0; i < b.N; i++ {
		v = Smoothstep(0, 1, float64(i%1000)*0.001)
	}
	_ = v
}
