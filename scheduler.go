package badgemon

import "time"

// activeEntry records when an active node started.
type activeEntry struct {
	start float64
	node  *Node
}

// Scheduler owns a logical clock in milliseconds, the set of active nodes and
// a time-ordered queue of pending completions. It is driven by one Update call
// per tick from the host loop and is not safe for concurrent use; game code
// running in tasks reaches it through Tasks, which serializes access.
type Scheduler struct {
	clock   float64
	active  []activeEntry
	pending eventQueue
	seq     uint64

	sink  EventSink
	debug bool
	stats debugStats
}

// NewScheduler creates an empty scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		active:  make([]activeEntry, 0, 16),
		pending: make(eventQueue, 0, 16),
	}
}

// Clock returns the logical clock in milliseconds.
func (s *Scheduler) Clock() float64 {
	return s.clock
}

// ActiveCount returns the number of entries in the active set. Nodes that
// ended during the last drain are purged before progress callbacks run.
func (s *Scheduler) ActiveCount() int {
	return len(s.active)
}

// PendingCount returns the number of queued completions.
func (s *Scheduler) PendingCount() int {
	return len(s.pending)
}

// Active returns the nodes currently in the active set, in trigger order.
func (s *Scheduler) Active() []*Node {
	out := make([]*Node, 0, len(s.active))
	for _, a := range s.active {
		out = append(out, a.node)
	}
	return out
}

// SetEventSink sets the optional lifecycle observer.
func (s *Scheduler) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-update stats
// and graph warnings are printed to stderr.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Trigger starts n at the current clock. Triggering a node that has already
// started is a no-op until the node is Reset. A node Reset while running
// restarts in place: it keeps one active entry and one queued completion.
//
// The node's completion is decided here: a node whose forced-end sources have
// all fired ends immediately, a finite node ends after its duration, and an
// infinite node waits for a forced end or a kill.
func (s *Scheduler) Trigger(n *Node) {
	if n == nil {
		panic("badgemon: cannot trigger nil node")
	}
	if n.started {
		return
	}
	if s.debug {
		debugCheckTrigger(n)
	}
	s.enlist(n)
	n.startedAt = s.clock
	n.onStart()
	s.emit(NodeStarted, n)

	switch {
	case n.forcedEndReady():
		s.schedule(n, s.clock)
	case !n.Infinite:
		s.schedule(n, s.clock+n.length)
	}
	if s.debug {
		debugCheckActive(s)
	}
}

// Update advances the clock by delta milliseconds. Every pending completion
// due at or before the new clock is resolved first, in time order, including
// completions queued by the cascades of earlier ones. Only then does each
// active node receive its progress for this tick. Negative deltas are
// treated as zero.
func (s *Scheduler) Update(delta float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = debugStats{}
	}

	target := s.clock + max(delta, 0)
	for len(s.pending) > 0 && s.pending.peek().at <= target {
		ev := s.pending.pop()
		s.clock = max(s.clock, ev.at)
		s.finish(ev.node)
		if s.debug {
			s.stats.drained++
		}
	}
	s.clock = target
	s.purge()

	// Callbacks may trigger more nodes; those get their first progress next tick.
	count := len(s.active)
	for i := 0; i < count && i < len(s.active); i++ {
		a := s.active[i]
		if a.node.ended {
			continue
		}
		a.node.update(s.progress(a))
	}

	if s.debug {
		s.stats.drainTime = time.Since(t0)
		s.stats.active = len(s.active)
		s.stats.pending = len(s.pending)
		s.debugLog()
	}
}

// KillAnimation ends every active node without cascading, then returns the
// scheduler to a fresh state with the clock at zero. Used on scene teardown.
func (s *Scheduler) KillAnimation() {
	// Index loop: end callbacks may trigger more nodes, which are killed too.
	for i := 0; i < len(s.active); i++ {
		a := s.active[i]
		if a.node.ended {
			continue
		}
		a.node.onEnd()
		s.emit(NodeKilled, a.node)
	}
	for _, a := range s.active {
		a.node.listed = false
	}
	clear(s.active)
	s.active = s.active[:0]
	s.pending.clear()
	s.clock = 0
	s.seq = 0
}

// enlist adds n to the active set. A node that was Reset while still
// listed keeps its single entry, restarted at the current clock.
func (s *Scheduler) enlist(n *Node) {
	if n.listed {
		for i := range s.active {
			if s.active[i].node == n {
				s.active[i].start = s.clock
				return
			}
		}
	}
	n.listed = true
	s.active = append(s.active, activeEntry{start: s.clock, node: n})
}

// finish ends n and resolves its cascade at the current clock.
func (s *Scheduler) finish(n *Node) {
	if n.ended {
		return
	}
	n.onEnd()
	s.emit(NodeEnded, n)

	for _, next := range n.next {
		next.start.needed--
		if next.start.needed <= 0 && !next.started {
			s.Trigger(next)
		}
	}
	for _, target := range n.ends {
		target.end.needed--
		if target.end.needed > 0 || target.ended {
			continue
		}
		if !target.started {
			// Trigger sees the met threshold and queues an immediate end.
			s.Trigger(target)
		} else {
			s.schedule(target, s.clock)
		}
	}
}

// schedule queues n's completion at time at, superseding any earlier entry.
func (s *Scheduler) schedule(n *Node, at float64) {
	s.seq++
	s.pending.schedule(n, at, s.seq)
}

// purge drops ended nodes from the active set, preserving order.
func (s *Scheduler) purge() {
	kept := s.active[:0]
	for _, a := range s.active {
		if !a.node.ended {
			kept = append(kept, a)
		} else {
			a.node.listed = false
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = activeEntry{}
	}
	s.active = kept
}

// progress returns local progress for an active entry. Values above 1 are
// expected for infinite nodes. Zero-length nodes report 1.
func (s *Scheduler) progress(a activeEntry) float64 {
	if a.node.length == 0 {
		return 1
	}
	return (s.clock - a.start) / a.node.length
}

func (s *Scheduler) emit(typ NodeEventType, n *Node) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(NodeEvent{Type: typ, NodeID: n.ID, Name: n.Name, Clock: s.clock})
}
