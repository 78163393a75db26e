package concurrency

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWorker_LifecycleTransitions(t *testing.T) {
	q := NewRing[workItem](8)
	w := NewWorker(q)

	if w.Status() != StatusCreated {
		t.Fatalf("want CREATED, got %v", w.Status())
	}

	w.Start()
	if w.Status() != StatusRunning {
		t.Fatalf("want RUNNING, got %v", w.Status())
	}

	w.Pause()
	if w.Status() != StatusPaused {
		t.Fatalf("want PAUSED, got %v", w.Status())
	}

	w.Resume()
	if w.Status() != StatusRunning {
		t.Fatalf("want RUNNING after resume, got %v", w.Status())
	}

	w.Shutdown()
	if w.Status() != StatusTerminated {
		t.Fatalf("want TERMINATED, got %v", w.Status())
	}

	// idempotent
	w.Shutdown()
}

func TestWorker_ExecutesQueuedWork(t *testing.T) {
	q := NewRing[workItem](8)
	w := NewWorker(q)
	w.Start()
	defer w.Shutdown()

	var ran atomic.Bool
	item := newWorkItem(func() { ran.Store(true) })
	q.Push([]workItem{item})

	deadline := time.Now().Add(time.Second)
	// tasksRun is counted after the item returns, so wait for both.
	for (!ran.Load() || w.TasksRun() == 0) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !ran.Load() {
		t.Fatal("work item did not run within deadline")
	}
	if w.TasksRun() != 1 {
		t.Fatalf("want 1 task run, got %d", w.TasksRun())
	}
}

func TestWorker_CreatedDoesNotConsume(t *testing.T) {
	q := NewRing[workItem](8)
	w := NewWorker(q)
	defer w.Shutdown()
	// never started: stays CREATED, must not drain the queue

	item := newWorkItem(func() {})
	q.Push([]workItem{item})

	time.Sleep(20 * time.Millisecond)
	if q.Empty() {
		t.Fatal("a CREATED worker must not dequeue work")
	}
}

func TestEmptyWorkItem_IsNoop(t *testing.T) {
	var item workItem
	item.invoke() // must not panic
}
