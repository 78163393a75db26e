//go:build !linux

// File: internal/concurrency/affinity_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback hardware-concurrency query for platforms without a cheap
// affinity-mask syscall, including Windows: the pool only needs a CPU
// count to bound its initial active worker set, not thread pinning, so
// no platform-specific syscall is wired in here.

package concurrency

import "runtime"

func hardwareConcurrency() int {
	return runtime.NumCPU()
}
