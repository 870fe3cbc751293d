package badgemon

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; nodes are built on the scheduler goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Thresholds ---

// threshold counts how many linked nodes must end before a transition fires.
// backup is the wired value restored by Reset; needed is the live countdown.
type threshold struct {
	needed int
	backup int
	any    bool
}

// rewire adjusts the threshold after an edge was added or removed. edges is
// the number of edges left after the change and delta is +1 or -1.
func (th *threshold) rewire(edges, delta int) {
	next := th.backup + delta
	if th.any {
		next = min(edges, 1)
	}
	next = max(next, 0)
	th.needed += next - th.backup
	th.backup = next
}

func (th *threshold) setAny(edges int) {
	th.any = true
	th.backup = min(edges, 1)
	th.needed = th.backup
}

func (th *threshold) setAll(edges int) {
	th.any = false
	th.backup = edges
	th.needed = edges
}

// --- Node ---

// Node is a schedulable timeline unit: a duration in milliseconds, a
// start/end lifecycle and a per-tick progress callback. A single flat struct
// covers every node type so the scheduler never dispatches through interfaces.
//
// Nodes are wired into a directed graph with start-after edges (AndThen,
// After, ButAlso) and forced-end edges (Ends, EndedBy). Cycles are not
// detected; nodes on a cycle simply never reach their threshold.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Infinite nodes never schedule their natural end. They stop only via a
	// forced-end edge or Scheduler.KillAnimation.
	Infinite bool

	length  float64
	started bool
	ended   bool

	// Edges
	next    []*Node // start-after successors
	prev    []*Node // start-after predecessors
	ends    []*Node // forced-end targets
	endedBy []*Node // forced-end sources
	start   threshold
	end     threshold

	// Tween fields (NodeTypeTween)
	Curve  Curve
	From   float64
	To     float64
	Editor func(value float64)
	ease   ease.TweenFunc
	gw     *gween.Tween
	from   func() float64 // when set, re-reads From on every start

	// Cyclic fields (NodeTypeCyclic)
	Wave  Wave
	Inner *Node

	// Rendezvous fields (NodeTypeRendezvous)
	latch *Latch

	// Per-node callbacks (nil by default). OnUpdate receives the same
	// progress the scheduler computes, after the type-specific behavior.
	OnStart  func()
	OnUpdate func(progress float64)
	OnEnd    func()
	OnReset  func()

	// Scheduler bookkeeping
	queued    *event
	startedAt float64
	listed    bool // has an entry in the active set
}

// newNode asserts the duration and fills the shared defaults.
func newNode(name string, typ NodeType, ms float64) *Node {
	if ms < 0 {
		panic("badgemon: negative duration")
	}
	return &Node{ID: nextNodeID(), Name: name, Type: typ, length: ms}
}

// NewWait creates a node with no effect. A zero-length wait is the usual way
// to start several branches at once or to join them.
func NewWait(name string, ms float64) *Node {
	return newNode(name, NodeTypeWait, ms)
}

// NewNode creates a custom node whose behavior lives in its On* callbacks.
func NewNode(name string, ms float64) *Node {
	return newNode(name, NodeTypeCustom, ms)
}

// Duration returns the node's length in milliseconds.
func (n *Node) Duration() float64 {
	return n.length
}

// SetDuration changes the node's length. Takes effect on the next Trigger.
// Panics on a negative duration.
func (n *Node) SetDuration(ms float64) {
	if ms < 0 {
		panic("badgemon: negative duration")
	}
	n.length = ms
}

// Started reports whether the node has been triggered since the last Reset.
func (n *Node) Started() bool {
	return n.started
}

// Ended reports whether the node has ended since the last Reset.
func (n *Node) Ended() bool {
	return n.ended
}

// Running reports whether the node has started and not yet ended.
func (n *Node) Running() bool {
	return n.started && !n.ended
}

// --- Lifecycle (called by the scheduler) ---

// update delivers progress to the node. Progress may exceed 1 for infinite
// nodes and for nodes whose forced end has not drained yet.
func (n *Node) update(t float64) {
	switch n.Type {
	case NodeTypeTween:
		n.edit(n.value(t))
	case NodeTypeCyclic:
		if n.Inner != nil {
			n.Inner.update(n.Wave.Remap(t))
		}
	}
	if n.OnUpdate != nil {
		n.OnUpdate(t)
	}
}

func (n *Node) onStart() {
	switch n.Type {
	case NodeTypeTween:
		if n.from != nil {
			n.From = n.from()
		}
		n.gw = nil
		n.edit(n.From)
		if n.OnUpdate != nil {
			n.OnUpdate(0)
		}
	case NodeTypeCyclic:
		if n.Inner != nil && !n.Inner.started {
			n.Inner.onStart()
		}
	default:
		n.update(0)
	}
	if n.OnStart != nil {
		n.OnStart()
	}
	n.started = true
}

func (n *Node) onEnd() {
	if n.ended {
		return
	}
	switch n.Type {
	case NodeTypeTween:
		n.edit(n.To)
		if n.OnUpdate != nil {
			n.OnUpdate(1)
		}
	case NodeTypeCyclic:
		if n.Inner != nil && !n.Inner.ended {
			n.Inner.onEnd()
		}
	default:
		n.update(1)
	}
	if n.Type == NodeTypeRendezvous && n.latch != nil {
		n.latch.Signal()
	}
	if n.OnEnd != nil {
		n.OnEnd()
	}
	n.ended = true
}

// Reset re-arms the node: flags are cleared and thresholds restored to their
// wired values. Edges are left untouched, so an unchanged graph replays
// identically. Cyclic nodes reset their inner node and rendezvous nodes clear
// their latch.
func (n *Node) Reset() {
	n.started = false
	n.ended = false
	n.start.needed = n.start.backup
	n.end.needed = n.end.backup
	switch n.Type {
	case NodeTypeCyclic:
		if n.Inner != nil {
			n.Inner.Reset()
		}
	case NodeTypeRendezvous:
		if n.latch != nil {
			n.latch.Clear()
		}
	}
	if n.OnReset != nil {
		n.OnReset()
	}
}

// --- Graph building ---

// Connect adds a directed edge of the given kind and bumps the target's
// threshold according to its policy. All builder methods go through Connect.
// Panics if either node is nil or if from == to.
func Connect(from, to *Node, kind EdgeKind) {
	if from == nil || to == nil {
		panic("badgemon: cannot connect nil node")
	}
	if from == to {
		panic("badgemon: cannot connect a node to itself")
	}
	switch kind {
	case EdgeStartAfter:
		from.next = append(from.next, to)
		to.prev = append(to.prev, from)
		to.start.rewire(len(to.prev), 1)
	case EdgeForcedEnd:
		from.ends = append(from.ends, to)
		to.endedBy = append(to.endedBy, from)
		to.end.rewire(len(to.endedBy), 1)
	default:
		panic("badgemon: unknown edge kind")
	}
}

// AndThen makes next start after n ends and returns next, so chains read in
// order: a.AndThen(b).AndThen(c). By default next waits for all of its
// predecessors; see StartOnAny.
func (n *Node) AndThen(next *Node) *Node {
	Connect(n, next, EdgeStartAfter)
	return next
}

// After makes n start after prev ends and returns n.
func (n *Node) After(prev *Node) *Node {
	Connect(prev, n, EdgeStartAfter)
	return n
}

// ButAlso makes next share n's predecessors, so whatever starts n also starts
// next. With sync, next also gates n's successors: they wait for both.
// Returns next.
//
//	starter.AndThen(x).ButAlso(y).ButAlso(scale)
func (n *Node) ButAlso(next *Node, sync bool) *Node {
	for _, p := range n.prev {
		Connect(p, next, EdgeStartAfter)
	}
	if n.start.any {
		next.StartOnAny()
	}
	if sync {
		for _, s := range n.next {
			Connect(next, s, EdgeStartAfter)
		}
	}
	return next
}

// StartOnAny makes n start as soon as any one predecessor ends. Call after
// all predecessor edges are wired.
func (n *Node) StartOnAny() *Node {
	n.start.setAny(len(n.prev))
	return n
}

// StartOnAll makes n wait for every wired predecessor (the default).
func (n *Node) StartOnAll() *Node {
	n.start.setAll(len(n.prev))
	return n
}

// Ends makes target end as soon as n ends, and returns target. A target that
// has not started yet is started and ended on the spot.
func (n *Node) Ends(target *Node) *Node {
	Connect(n, target, EdgeForcedEnd)
	return target
}

// EndedBy makes n end as soon as other ends, and returns n.
func (n *Node) EndedBy(other *Node) *Node {
	Connect(other, n, EdgeForcedEnd)
	return n
}

// EndOnAny makes n end when any one of its forced-end sources ends.
func (n *Node) EndOnAny() *Node {
	n.end.setAny(len(n.endedBy))
	return n
}

// EndOnAll makes n end only once every forced-end source has ended (the
// default).
func (n *Node) EndOnAll() *Node {
	n.end.setAll(len(n.endedBy))
	return n
}

// Detach removes n from all four relations in both directions. Former
// neighbours have their thresholds lowered to match.
func (n *Node) Detach() {
	for _, p := range n.prev {
		p.next = removeOne(p.next, n)
	}
	for _, s := range n.next {
		s.prev = removeOne(s.prev, n)
		s.start.rewire(len(s.prev), -1)
	}
	for _, e := range n.endedBy {
		e.ends = removeOne(e.ends, n)
	}
	for _, t := range n.ends {
		t.endedBy = removeOne(t.endedBy, n)
		t.end.rewire(len(t.endedBy), -1)
	}
	n.next, n.prev, n.ends, n.endedBy = nil, nil, nil, nil
	n.start = threshold{any: n.start.any}
	n.end = threshold{any: n.end.any}
}

// Successors returns the start-after successors. The returned slice MUST NOT
// be mutated by the caller.
func (n *Node) Successors() []*Node {
	return n.next
}

// Predecessors returns the start-after predecessors. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Predecessors() []*Node {
	return n.prev
}

// PendingStarts returns how many predecessors must still end before n starts.
func (n *Node) PendingStarts() int {
	return n.start.needed
}

// PendingEnds returns how many forced-end sources must still end before n is
// ended early.
func (n *Node) PendingEnds() int {
	return n.end.needed
}

// forcedEndReady reports whether n's forced-end threshold is already met.
func (n *Node) forcedEndReady() bool {
	return len(n.endedBy) > 0 && n.end.needed <= 0
}

// removeOne removes the first occurrence of node from list.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removeOne(list []*Node, node *Node) []*Node {
	for i, c := range list {
		if c == node {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
