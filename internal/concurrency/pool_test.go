package concurrency

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Throughput(t *testing.T) {
	p := NewPool(4, 1000)
	p.Start()

	const n = 100000
	var counter atomic.Int64
	for i := 0; i < n; i++ {
		for !p.Submit(func() { counter.Add(1) }) {
		}
	}
	p.Shutdown()

	if counter.Load() != n {
		t.Fatalf("want %d completions, got %d", n, counter.Load())
	}
}

func TestPool_DrainCorrectness(t *testing.T) {
	p := NewPool(2, 8)
	p.Start()

	const n = 100
	var completed atomic.Int64
	for i := 0; i < n; i++ {
		ok := p.Submit(func() {
			time.Sleep(time.Millisecond)
			completed.Add(1)
		})
		if !ok {
			t.Fatalf("submit %d rejected while pool running", i)
		}
	}
	p.Shutdown()

	if completed.Load() != n {
		t.Fatalf("want %d completions after drain, got %d", n, completed.Load())
	}
}

func TestPool_ForceShutdownBound(t *testing.T) {
	p := NewPool(2, 8)
	p.Start()

	const n = 100
	var completed atomic.Int64
	for i := 0; i < n; i++ {
		p.Submit(func() {
			time.Sleep(time.Millisecond)
			completed.Add(1)
		})
	}
	p.ForceShutdown()

	got := completed.Load()
	if got < 0 || got > n {
		t.Fatalf("completions out of bound [0,%d]: %d", n, got)
	}
	for _, w := range p.workers {
		if w.Status() != StatusTerminated {
			t.Fatalf("worker not terminated after ForceShutdown")
		}
	}
}

func TestPool_SubmissionAfterShutdownIsRejected(t *testing.T) {
	p := NewPool(2, 8)
	p.Start()
	p.Shutdown()

	if p.Submit(func() {}) {
		t.Fatal("submit after shutdown must be rejected")
	}
	if p.TrySubmit(func() {}) {
		t.Fatal("trySubmit after shutdown must be rejected")
	}
}

func TestPool_ResizeUnderPressure(t *testing.T) {
	p := NewPool(8, 64)
	p.Start()

	// Fill the queue close to capacity to raise measured stress.
	for i := 0; i < 55; i++ {
		p.TrySubmit(func() { time.Sleep(5 * time.Millisecond) })
	}

	deadline := time.Now().Add(2 * time.Second)
	for p.ActiveCount() < p.PoolSize() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if p.ActiveCount() < 2 {
		t.Fatalf("active count dropped below minimum: %d", p.ActiveCount())
	}

	p.Shutdown()
}

func TestPool_AvgTaskNanosReflectsCompletedWork(t *testing.T) {
	p := NewPool(2, 16)
	p.Start()

	for i := 0; i < 10; i++ {
		p.Submit(func() { time.Sleep(time.Millisecond) })
	}
	p.Shutdown()

	if p.AvgTaskNanos() <= 0 {
		t.Fatalf("want positive average task latency after completed work, got %d", p.AvgTaskNanos())
	}
}

func TestPool_PauseResumeStability(t *testing.T) {
	p := NewPool(4, 100)
	p.Start()

	var completed atomic.Int64
	for i := 0; i < 20; i++ {
		p.Submit(func() { completed.Add(1) })
	}
	time.Sleep(20 * time.Millisecond)

	p.Pause()
	before := completed.Load()
	time.Sleep(20 * time.Millisecond)
	after := completed.Load()
	if after < before {
		t.Fatalf("completed count must be non-decreasing across pause: before=%d after=%d", before, after)
	}

	p.Resume()
	p.Shutdown()
}
