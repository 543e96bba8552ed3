// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

// State is the lifecycle state of a Shell.
type State uint8

const (
	// StateUninitialized is the state of a new Shell.
	StateUninitialized State = iota

	// StateWindowReady means the window system is initialized and the
	// window exists.
	StateWindowReady

	// StateInstanceReady means the graphics instance exists.
	StateInstanceReady

	// StateRunning means the shell is inside the event loop.
	StateRunning

	// StateTerminated means all resources have been released.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateWindowReady:
		return "WindowReady"
	case StateInstanceReady:
		return "InstanceReady"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
