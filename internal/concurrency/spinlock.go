// File: internal/concurrency/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLatch is a single atomic-flag mutex for the short critical sections
// that couple pool-status changes to worker operations: a test-and-set
// over atomic.Bool with a yield-and-retry loop instead of kernel parking.

package concurrency

import (
	"runtime"
	"sync/atomic"
)

// SpinLatch is a non-reentrant mutual-exclusion primitive that never
// parks a goroutine on a kernel wait queue; contenders yield the
// scheduler and retry. Intended only for critical sections short enough
// that kernel-level blocking would cost more than spinning.
type SpinLatch struct {
	locked atomic.Bool
}

// Lock blocks the calling goroutine until the latch is acquired.
func (s *SpinLatch) Lock() {
	for !s.locked.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// Unlock releases the latch. Unlocking an unlocked latch is undefined.
func (s *SpinLatch) Unlock() {
	s.locked.Store(false)
}

// TryLock attempts to acquire the latch without blocking.
func (s *SpinLatch) TryLock() bool {
	return s.locked.CompareAndSwap(false, true)
}
