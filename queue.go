package badgemon

import "container/heap"

// event is a pending completion: node ends at time at. seq breaks ties in
// insertion order. index is the event's heap slot, maintained by eventQueue.
type event struct {
	at    float64
	seq   uint64
	node  *Node
	index int
}

// eventQueue is a min-heap of pending completions ordered by (at, seq).
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	ev := x.(*event)
	ev.index = len(*q)
	*q = append(*q, ev)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*q = old[:n-1]
	return ev
}

// peek returns the earliest event without removing it.
func (q eventQueue) peek() *event {
	return q[0]
}

// schedule queues node to end at time at. A node that is already queued is
// re-keyed instead, so each activation occupies at most one slot.
func (q *eventQueue) schedule(node *Node, at float64, seq uint64) {
	if ev := node.queued; ev != nil && ev.index >= 0 {
		ev.at = at
		ev.seq = seq
		heap.Fix(q, ev.index)
		return
	}
	ev := &event{at: at, seq: seq, node: node}
	node.queued = ev
	heap.Push(q, ev)
}

// pop removes and returns the earliest event, detaching it from its node.
func (q *eventQueue) pop() *event {
	ev := heap.Pop(q).(*event)
	ev.node.queued = nil
	return ev
}

// clear drops every pending event.
func (q *eventQueue) clear() {
	for i, ev := range *q {
		ev.node.queued = nil
		ev.index = -1
		(*q)[i] = nil
	}
	*q = (*q)[:0]
}
