// File: internal/concurrency/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool owns the shared ring queue and the fixed worker set, gates
// submission against pool state, and runs a manager goroutine that
// resizes the active worker count by queue stress. The join discipline
// generalizes an executor's global/local queue split and WaitGroup join
// to a CREATED/RUNNING/PAUSED/TERMINATED state machine, and the resize
// loop follows the stress-driven manage()/dispatch() shape of a classic
// thread pool.

package concurrency

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	equeue "github.com/eapache/queue"

	"github.com/loopwerk/taskpool/api"
)

const stressHistoryCap = 64

// Pool owns all workers and the queue, and exposes submission and
// lifecycle operations gated by an atomic pool-status word identical in
// shape to the worker's.
type Pool struct {
	queue   *Ring[workItem]
	workers []*Worker

	status      atomic.Int32
	activeCount atomic.Int32
	poolSize    int

	latch SpinLatch // couples submit/shutdown/resize races

	mu          sync.Mutex
	cond        *sync.Cond
	managerDone chan struct{}

	historyMu sync.Mutex
	history   *equeue.Queue

	lastErr atomic.Pointer[api.Error]
}

// NewPool constructs a pool with a fixed-size worker set and a bounded
// ring queue. poolSize <= 1 is bumped to 2.
func NewPool(poolSize, queueCapacity int) *Pool {
	if poolSize <= 1 {
		poolSize = 2
	}
	q := NewRing[workItem](queueCapacity)
	p := &Pool{
		queue:       q,
		poolSize:    poolSize,
		workers:     make([]*Worker, poolSize),
		managerDone: make(chan struct{}),
		history:     equeue.New(),
	}
	p.cond = sync.NewCond(&p.mu)
	for i := range p.workers {
		p.workers[i] = NewWorker(q)
	}
	go p.manage()
	debugf("pool created: size=%d capacity=%d", poolSize, q.Capacity())
	return p
}

// Status returns the pool's current lifecycle state.
func (p *Pool) Status() WorkerStatus { return WorkerStatus(p.status.Load()) }

// ActiveCount returns the number of workers currently governed RUNNING
// by the manager's resize policy.
func (p *Pool) ActiveCount() int { return int(p.activeCount.Load()) }

// PoolSize returns the fixed number of worker slots.
func (p *Pool) PoolSize() int { return p.poolSize }

// QueueSize and QueueCapacity expose the underlying ring's occupancy.
func (p *Pool) QueueSize() int     { return p.queue.Size() }
func (p *Pool) QueueCapacity() int { return p.queue.Capacity() }

// Start transitions CREATED -> RUNNING, activating an initial set of
// workers bounded by hardware concurrency and pool size.
func (p *Pool) Start() {
	p.latch.Lock()
	defer p.latch.Unlock()
	if !p.status.CompareAndSwap(int32(StatusCreated), int32(StatusRunning)) {
		return
	}
	initial := maxInt(2, hardwareConcurrency())
	if initial > p.poolSize {
		initial = p.poolSize
	}
	for i := 0; i < initial; i++ {
		p.workers[i].Start()
	}
	p.activeCount.Store(int32(initial))
	debugf("pool started: active=%d/%d", initial, p.poolSize)
	p.notifyManager()
}

// Pause propagates PAUSED to every currently active worker.
func (p *Pool) Pause() {
	p.latch.Lock()
	defer p.latch.Unlock()
	if !p.status.CompareAndSwap(int32(StatusRunning), int32(StatusPaused)) {
		return
	}
	active := int(p.activeCount.Load())
	for i := 0; i < active; i++ {
		p.workers[i].Pause()
	}
	debugf("pool paused: active=%d", active)
}

// Resume propagates RUNNING to every currently active worker.
func (p *Pool) Resume() {
	p.latch.Lock()
	defer p.latch.Unlock()
	if !p.status.CompareAndSwap(int32(StatusPaused), int32(StatusRunning)) {
		return
	}
	active := int(p.activeCount.Load())
	for i := 0; i < active; i++ {
		p.workers[i].Resume()
	}
	debugf("pool resumed: active=%d", active)
	p.notifyManager()
}

// TrySubmit enqueues fn without blocking. Returns false if the queue is
// full or the pool is not RUNNING; neither case enqueues anything.
func (p *Pool) TrySubmit(fn func()) bool {
	if p.Status() != StatusRunning {
		p.setLastErr(api.ErrCodePoolNotRunning, api.ErrPoolNotRunning.Error())
		return false
	}
	buf := [1]workItem{newWorkItem(fn)}
	if p.queue.Push(buf[:]) != 1 {
		p.setLastErr(api.ErrCodeQueueFull, api.ErrQueueFull.Error())
		return false
	}
	return true
}

// Submit enqueues fn, spin-yielding until space is available. Returns
// false immediately if the pool is not RUNNING. The spin latch is held
// for the duration of the retry loop so a concurrent ForceShutdown
// cannot tear down worker storage mid-push.
func (p *Pool) Submit(fn func()) bool {
	p.latch.Lock()
	defer p.latch.Unlock()
	if p.Status() != StatusRunning {
		p.setLastErr(api.ErrCodePoolNotRunning, api.ErrPoolNotRunning.Error())
		return false
	}
	buf := [1]workItem{newWorkItem(fn)}
	for p.queue.Push(buf[:]) == 0 {
		runtime.Gosched()
	}
	return true
}

// setLastErr records the most recent rejection as a structured, queryable
// error without disturbing Submit/TrySubmit's bool-only hot-path contract.
func (p *Pool) setLastErr(code api.ErrorCode, message string) {
	p.lastErr.Store(api.NewError(code, message).WithContext("queue_size", p.queue.Size()))
}

// LastError returns the most recently recorded rejection, or nil if none
// has occurred since construction. Purely observational.
func (p *Pool) LastError() *api.Error {
	return p.lastErr.Load()
}

// Shutdown drains the queue (waits until empty) then force-terminates.
// Every work item queued before this call was invoked was executed to
// completion by the time Shutdown returns.
func (p *Pool) Shutdown() {
	for !p.queue.Empty() {
		runtime.Gosched()
	}
	p.ForceShutdown()
}

// ForceShutdown terminates the pool immediately: every worker is joined
// before this returns, but queued work items may or may not have run.
func (p *Pool) ForceShutdown() {
	p.latch.Lock()
	prev := WorkerStatus(p.status.Swap(int32(StatusTerminated)))
	p.latch.Unlock()

	if prev == StatusTerminated {
		<-p.managerDone
		return
	}
	p.notifyManager()
	for _, w := range p.workers {
		w.Shutdown()
	}
	<-p.managerDone
	debugf("pool force-shutdown complete")
}

// StressHistory returns recent queue-stress samples the manager recorded,
// most recent last. Purely observational.
func (p *Pool) StressHistory() []float64 {
	p.historyMu.Lock()
	defer p.historyMu.Unlock()
	out := make([]float64, p.history.Length())
	for i := range out {
		out[i] = p.history.Get(i).(float64)
	}
	return out
}

// AvgTaskNanos returns the mean of every active worker's own
// exponentially-weighted average task latency. Zero if no worker is
// currently active.
func (p *Pool) AvgTaskNanos() int64 {
	active := int(p.activeCount.Load())
	if active == 0 {
		return 0
	}
	var sum int64
	for i := 0; i < active; i++ {
		sum += p.workers[i].AvgTaskNanos()
	}
	return sum / int64(active)
}

func (p *Pool) notifyManager() {
	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()
}

func (p *Pool) stress() float64 {
	cap := p.queue.Capacity()
	if cap == 0 {
		return 0
	}
	return float64(p.queue.Size()) / float64(cap)
}

func (p *Pool) recordStress(s float64) {
	p.historyMu.Lock()
	p.history.Add(s)
	for p.history.Length() > stressHistoryCap {
		p.history.Remove()
	}
	p.historyMu.Unlock()
}

// manage runs the resize loop: while RUNNING, it samples queue stress
// and monotonically grows or shrinks the active worker set; while
// CREATED or PAUSED, it sleeps on the pool's condition variable.
func (p *Pool) manage() {
	defer close(p.managerDone)
	for {
		switch p.Status() {
		case StatusTerminated:
			return
		case StatusRunning:
			s := p.stress()
			p.recordStress(s)
			desired := desiredActiveCount(s, p.poolSize)
			p.latch.Lock()
			if p.Status() == StatusRunning {
				p.resizeTo(desired)
			}
			p.latch.Unlock()
			runtime.Gosched()
		default: // CREATED or PAUSED
			p.mu.Lock()
			for s := p.Status(); s == StatusCreated || s == StatusPaused; s = p.Status() {
				p.cond.Wait()
			}
			p.mu.Unlock()
		}
	}
}

// resizeTo grows the active set by starting/resuming the lowest-index
// inactive workers, or shrinks it by pausing the highest-index active
// workers. Workers beyond the active count are always the high-index
// slots, making repeated resize ticks idempotent.
func (p *Pool) resizeTo(desired int) {
	if desired > p.poolSize {
		desired = p.poolSize
	}
	if desired < 2 {
		desired = 2
	}
	current := int(p.activeCount.Load())
	if desired == current {
		return
	}
	if desired > current {
		for i := current; i < desired; i++ {
			if p.workers[i].Status() == StatusCreated {
				p.workers[i].Start()
			} else {
				p.workers[i].Resume()
			}
		}
	} else {
		for i := desired; i < current; i++ {
			p.workers[i].Pause()
		}
	}
	p.activeCount.Store(int32(desired))
}

func desiredActiveCount(stress float64, poolSize int) int {
	desired := int(math.Floor(stress * float64(poolSize)))
	if desired < 2 {
		desired = 2
	}
	if desired > poolSize {
		desired = poolSize
	}
	return desired
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
