// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free concurrency primitives for the task pool: a bounded MPMC
// ring queue driven by four atomic cursors, a spin latch for the short
// critical sections that couple pool state to worker operations, a
// worker lifecycle state machine, and the pool controller that ties
// them together.
package concurrency
