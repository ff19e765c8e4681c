// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import "time"

// Timer is a pending call that can be cancelled.
type Timer interface {
	// Stop prevents the call from running. It reports whether the call
	// was stopped before it ran.
	Stop() bool
}

// Scheduler runs f once after d. Tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
