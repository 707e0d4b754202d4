// Package sync provides the synchronization primitives available to kernel
// code. At this stage of bring-up there is no scheduler and no enabled
// interrupts, so the primitives here never suspend; they exist to force every
// access to shared mutable state through a well-defined critical section that
// a real lock can later slot into.
package sync

import "sync/atomic"

var (
	// TODO: point yieldFn at the scheduler yield once context switching exists.
	yieldFn func()
)

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock is obtained by the currently active task.
// Re-acquiring a lock already held by the current task deadlocks.
func (l *Spinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		if yieldFn != nil {
			yieldFn()
		}
	}
}

// TryToAcquire attempts to acquire the lock without spinning and returns true
// if the lock was obtained.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other tasks to acquire it.
// Releasing a free lock has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
