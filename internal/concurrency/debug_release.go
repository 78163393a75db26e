//go:build release

// File: internal/concurrency/debug_release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Release builds are silent.

package concurrency

func debugf(format string, args ...any) {}
