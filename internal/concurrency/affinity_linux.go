//go:build linux

// File: internal/concurrency/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// hardwareConcurrency on Linux reads the calling process's scheduler
// affinity mask rather than assuming every logical CPU is available to
// it, which matters under cgroup/taskset-constrained deployments. This
// only needs a CPU count, not NUMA node placement, so there is no cgo
// or libnuma dependency here.

package concurrency

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func hardwareConcurrency() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	n := set.Count()
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
