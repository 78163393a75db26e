//go:build !release

// File: internal/concurrency/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-release builds emit single-line status messages at major
// lifecycle transitions through the standard library logger.

package concurrency

import "log"

func debugf(format string, args ...any) {
	log.Printf("[taskpool] "+format, args...)
}
