// File: doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package taskpool is an in-process task execution engine: a
// lock-free bounded MPMC ring queue feeds a fixed set of long-lived
// worker goroutines managed by a pool controller that scales the
// active worker count by queue pressure and offers graceful vs.
// immediate shutdown.
//
// The hot path (internal/concurrency) never allocates or blocks on a
// kernel primitive; only CREATED/PAUSED workers and a CREATED/PAUSED
// pool sleep on a condition variable.
package taskpool
