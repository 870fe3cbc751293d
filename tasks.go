package badgemon

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
	"golang.org/x/sync/errgroup"
)

// Tasks is a cooperative runtime for asynchronous game logic. Tasks and the
// host loop share a single baton: whoever holds it may touch the scheduler
// and the node graph, and a task gives it up only while suspended in Await.
// This keeps the scheduler single-threaded even though each task runs on its
// own goroutine.
//
//	tasks.Go(func(ctx context.Context) error {
//		scheduler.Trigger(fade)
//		return tasks.Await(ctx, done.Latch())
//	})
//	for { tasks.Step(func() { scheduler.Update(16) }) }
type Tasks struct {
	baton  sync.Mutex
	holder atomic.Int64 // goroutine ID holding the baton, 0 when free

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewTasks creates a runtime whose tasks are cancelled when parent is done,
// when Close is called, or when any task returns an error.
func NewTasks(parent context.Context) *Tasks {
	ctx, cancel := context.WithCancel(parent)
	group, gctx := errgroup.WithContext(ctx)
	return &Tasks{ctx: gctx, cancel: cancel, group: group}
}

// Context returns the context passed to every task.
func (t *Tasks) Context() context.Context {
	return t.ctx
}

// Go starts fn as a task. fn runs while holding the baton, so it only makes
// progress when the host is between Steps or other tasks are suspended.
func (t *Tasks) Go(fn func(ctx context.Context) error) {
	t.group.Go(func() error {
		t.acquire()
		defer t.release()
		return fn(t.ctx)
	})
}

// Step runs fn on the calling goroutine while holding the baton. The host
// loop wraps each tick's scheduler update and draw in Step.
func (t *Tasks) Step(fn func()) {
	t.acquire()
	defer t.release()
	fn()
}

// Await suspends the calling task until l is signaled or ctx is done,
// releasing the baton meanwhile. Panics if called outside a task or Step.
func (t *Tasks) Await(ctx context.Context, l *Latch) error {
	if t.holder.Load() != goid.Get() {
		panic("badgemon: Await called outside a task")
	}
	if l.IsSignaled() {
		return nil
	}
	t.release()
	err := l.Wait(ctx)
	t.acquire()
	return err
}

// Wait blocks until every task has returned and reports the first error.
// Must not be called while holding the baton.
func (t *Tasks) Wait() error {
	return t.group.Wait()
}

// Close cancels every task and waits for them to return. Cancellation
// errors, wrapped or not, are not reported. Must not be called while holding
// the baton.
func (t *Tasks) Close() error {
	t.cancel()
	err := t.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (t *Tasks) acquire() {
	t.baton.Lock()
	t.holder.Store(goid.Get())
}

func (t *Tasks) release() {
	t.holder.Store(0)
	t.baton.Unlock()
}
