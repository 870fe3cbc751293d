// Package badgemon is the timeline and scene layer of a turn-based
// creature-battling game for a badge device, hosted on [Ebitengine].
//
// Every time-based effect (fades, wobbles, evolution sequences, move
// animations) is a graph of [Node] values driven by a [Scheduler]. Game logic
// runs as cooperative tasks that suspend on a rendezvous node's [Latch] until
// a purely time-driven effect has finished.
//
// # Quick start
//
//	sm := badgemon.NewSceneManager(ctx, badgemon.DefaultSceneConfig())
//	sm.Start(&TitleScene{})
//	err := badgemon.Run(sm, badgemon.RunConfig{
//		Title: "Badgemon", Width: 240, Height: 240,
//	})
//
// For full control, drive the scheduler yourself: call [Scheduler.Update]
// once per tick with the elapsed milliseconds.
//
// # Nodes
//
// Create nodes with typed constructors: [NewWait], [NewNode], [NewTween],
// [NewEaseTween], [NewCyclic] and [NewRendezvous]. Wire them with start-after
// edges and forced-end edges:
//
//	starter := badgemon.NewWait("start", 0)
//	starter.AndThen(shakeX).ButAlso(shakeY, false).ButAlso(fade, false)
//	fade.Ends(shakeX)
//	fade.Ends(shakeY)
//	done := fade.AndThen(badgemon.NewRendezvous("done", nil))
//	scheduler.Trigger(starter)
//
// A node starts once all of its predecessors have ended ([Node.StartOnAny]
// relaxes that to the first one), and is ended early once all of its
// forced-end sources have ended ([Node.EndOnAny] likewise). Cycles are not
// detected: nodes on a cycle wait forever.
//
// # Curves
//
// Tween nodes interpolate with a [Curve]: linear, smoothstep, ease-in,
// ease-out and a deterministic hash noise. Built-in curves are pure and
// reproduce bit-for-bit across runs. Any [gween] easing function can be used
// through [NewEaseTween].
//
// # Scheduling
//
// [Scheduler.Update] first resolves every completion due within the tick, in
// time order and including cascades, and only then hands progress to the
// active nodes. [Scheduler.KillAnimation] ends everything without cascading.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package badgemon
