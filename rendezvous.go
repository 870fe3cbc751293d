package badgemon

import (
	"context"
	"sync"
)

// Latch is a reusable one-shot signal. The scheduler only ever calls Signal;
// asynchronous game code waits on it. Clear re-arms it for the next round.
// The zero value is an unsignaled latch.
//
// A Latch is meant for a single waiter, but every goroutine blocked in Wait
// is released by Signal.
type Latch struct {
	mu       sync.Mutex
	ch       chan struct{}
	signaled bool
}

// NewLatch returns an unsignaled latch.
func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{})}
}

func (l *Latch) chanLocked() chan struct{} {
	if l.ch == nil {
		l.ch = make(chan struct{})
	}
	return l.ch
}

// Signal releases the current waiter. Signaling twice is a no-op.
func (l *Latch) Signal() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.signaled {
		return
	}
	l.signaled = true
	close(l.chanLocked())
}

// Wait blocks until the latch is signaled or ctx is done. It returns
// immediately if the latch is already signaled.
func (l *Latch) Wait(ctx context.Context) error {
	l.mu.Lock()
	if l.signaled {
		l.mu.Unlock()
		return nil
	}
	ch := l.chanLocked()
	l.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the latch is signaled. The channel is
// replaced by Clear, so fetch it again after re-arming.
func (l *Latch) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chanLocked()
}

// IsSignaled reports whether Signal has been called since the last Clear.
func (l *Latch) IsSignaled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.signaled
}

// Clear re-arms the latch. Clearing an unsignaled latch is a no-op.
func (l *Latch) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.signaled {
		return
	}
	l.signaled = false
	l.ch = make(chan struct{})
}

// NewRendezvous creates a zero-length node whose only effect is signaling
// latch when it ends. Passing nil allocates a fresh latch. Reset clears the
// latch, so the same node can be awaited again after replaying its graph.
//
//	done := NewRendezvous("fade-done", nil)
//	fade.AndThen(done)
//	scheduler.Trigger(fade)
//	err := done.Latch().Wait(ctx)
func NewRendezvous(name string, latch *Latch) *Node {
	if latch == nil {
		latch = NewLatch()
	}
	n := newNode(name, NodeTypeRendezvous, 0)
	n.latch = latch
	return n
}

// Latch returns the latch signaled by a rendezvous node, or nil for other
// node types.
func (n *Node) Latch() *Latch {
	return n.latch
}
