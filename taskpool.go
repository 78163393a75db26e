// File: taskpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ThreadManager is the public facade over internal/concurrency.Pool.
// It packages a caller-supplied function into an internal/concurrency
// work item and pairs it with a Handle before reaching queue logic.

package taskpool

import (
	"github.com/loopwerk/taskpool/control"
	"github.com/loopwerk/taskpool/internal/concurrency"
)

const (
	defaultPoolSize      = 10
	defaultQueueCapacity = 1000
)

// Option customizes a ThreadManager beyond its core size parameters.
type Option func(*ThreadManager)

// WithDebugProbe registers an additional named debug hook alongside the
// pool's built-in ones.
func WithDebugProbe(name string, fn func() any) Option {
	return func(tm *ThreadManager) {
		tm.debug.RegisterProbe(name, fn)
	}
}

// ThreadManager owns a worker pool and exposes submission and lifecycle
// operations. The zero value is not usable; construct with
// NewThreadManager.
type ThreadManager struct {
	pool    *concurrency.Pool
	debug   *control.DebugProbes
	metrics *control.MetricsRegistry
}

// NewThreadManager constructs a pool with poolSize workers and a ring
// queue of queueCapacity. Passing 0 for either selects the package
// defaults (10, 1000); poolSize <= 1 is otherwise bumped to 2.
func NewThreadManager(poolSize, queueCapacity int, opts ...Option) *ThreadManager {
	if poolSize == 0 {
		poolSize = defaultPoolSize
	}
	if queueCapacity == 0 {
		queueCapacity = defaultQueueCapacity
	}
	tm := &ThreadManager{
		pool:    concurrency.NewPool(poolSize, queueCapacity),
		debug:   control.NewDebugProbes(),
		metrics: control.NewMetricsRegistry(),
	}
	tm.registerDefaultProbes()
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

func (tm *ThreadManager) registerDefaultProbes() {
	tm.debug.RegisterProbe("pool_size", func() any { return tm.pool.PoolSize() })
	tm.debug.RegisterProbe("active_workers", func() any { return tm.pool.ActiveCount() })
	tm.debug.RegisterProbe("queue_size", func() any { return tm.pool.QueueSize() })
	tm.debug.RegisterProbe("queue_capacity", func() any { return tm.pool.QueueCapacity() })
	tm.debug.RegisterProbe("stress_history", func() any { return tm.pool.StressHistory() })
	tm.debug.RegisterProbe("avg_task_nanos", func() any { return tm.pool.AvgTaskNanos() })
	tm.debug.RegisterProbe("last_error", func() any {
		if e := tm.pool.LastError(); e != nil {
			return e.Error()
		}
		return nil
	})
}

// snapshotMetrics refreshes the metrics registry from current pool
// state; called after every lifecycle transition so GetSnapshot always
// reflects the most recent known-good state.
func (tm *ThreadManager) snapshotMetrics() {
	tm.metrics.Set("active_workers", tm.pool.ActiveCount())
	tm.metrics.Set("queue_size", tm.pool.QueueSize())
	tm.metrics.Set("pool_status", tm.pool.Status())
}

// Debug exposes the pool's introspection surface.
func (tm *ThreadManager) Debug() *control.DebugProbes { return tm.debug }

// Metrics exposes the pool's point-in-time metrics snapshot surface.
func (tm *ThreadManager) Metrics() *control.MetricsRegistry { return tm.metrics }

// Start transitions the pool CREATED -> RUNNING.
func (tm *ThreadManager) Start() {
	tm.pool.Start()
	tm.snapshotMetrics()
}

// Pause propagates PAUSED to every active worker.
func (tm *ThreadManager) Pause() {
	tm.pool.Pause()
	tm.snapshotMetrics()
}

// Resume propagates RUNNING to every active worker.
func (tm *ThreadManager) Resume() {
	tm.pool.Resume()
	tm.snapshotMetrics()
}

// Shutdown drains the queue, then terminates every worker. Every work
// item queued before this call was invoked has completed by the time
// Shutdown returns.
func (tm *ThreadManager) Shutdown() {
	tm.pool.Shutdown()
	tm.snapshotMetrics()
}

// ForceShutdown terminates every worker immediately; queued work items
// may or may not have run.
func (tm *ThreadManager) ForceShutdown() {
	tm.pool.ForceShutdown()
	tm.snapshotMetrics()
}

// Submit packages f into a work item and blocks, spin-yielding, until
// the pool accepts it. The returned Handle is invalid iff the pool is
// not RUNNING.
func Submit[T any](tm *ThreadManager, f func() T) *Handle[T] {
	h := newHandle[T]()
	accepted := tm.pool.Submit(func() {
		h.publish(f())
	})
	if !accepted {
		return invalidHandle[T]()
	}
	return h
}

// TrySubmit packages f into a work item and enqueues it without
// blocking. The returned Handle is invalid if the queue was full or the
// pool was not RUNNING at the moment of the attempt.
func TrySubmit[T any](tm *ThreadManager, f func() T) *Handle[T] {
	h := newHandle[T]()
	accepted := tm.pool.TrySubmit(func() {
		h.publish(f())
	})
	if !accepted {
		return invalidHandle[T]()
	}
	return h
}

// SubmitVoid is the convenience form for work with no result.
func SubmitVoid(tm *ThreadManager, f func()) *Handle[struct{}] {
	return Submit(tm, func() struct{} {
		f()
		return struct{}{}
	})
}

// TrySubmitVoid is the non-blocking convenience form for work with no
// result.
func TrySubmitVoid(tm *ThreadManager, f func()) *Handle[struct{}] {
	return TrySubmit(tm, func() struct{} {
		f()
		return struct{}{}
	})
}
