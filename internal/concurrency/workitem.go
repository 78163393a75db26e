// File: internal/concurrency/workitem.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// workItem wraps one single-shot zero-argument callable. A default
// workItem is empty and invoking it is a no-op, which is exactly the
// behavior the ring queue's in-place slot overwrite needs: Pop zeroes
// the vacated slot (ring.go) so a dequeued item can be collected.

package concurrency

// invoker is the single-method capability the queue needs from a work
// item; it hides the concrete callable type behind a small interface
// rather than exposing the callable directly.
type invoker interface {
	call()
}

type funcInvoker func()

func (f funcInvoker) call() { f() }

// workItem is the queue's element type. Its zero value is empty and
// invoking it is a no-op.
type workItem struct {
	impl invoker
}

// newWorkItem constructs a work item from a moveable zero-argument
// callable. A nil fn produces an empty item.
func newWorkItem(fn func()) workItem {
	if fn == nil {
		return workItem{}
	}
	return workItem{impl: funcInvoker(fn)}
}

// invoke drives the inner callable once if non-empty; invoking an empty
// item is a no-op. Invoking does not empty the item, so a second invoke
// of the same non-empty item runs the callable again; avoiding that is
// the caller's responsibility.
func (w workItem) invoke() {
	if w.impl != nil {
		w.impl.call()
	}
}
