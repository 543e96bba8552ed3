// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import "errors"

// Shell errors. Failures returned by Run wrap one of these, so callers
// match them with errors.Is.
var (
	// ErrInstanceCreation is returned when the graphics API reports a
	// failure while creating the instance.
	ErrInstanceCreation = errors.New("vkshell: failed to create instance")

	// ErrWindowSystemInit is returned when the window system cannot be
	// initialized.
	ErrWindowSystemInit = errors.New("vkshell: failed to initialize window system")

	// ErrWindowCreation is returned when the window system cannot create
	// the window or returns no usable window.
	ErrWindowCreation = errors.New("vkshell: failed to create window")

	// ErrInvalidConfig is returned when the shell configuration is unusable.
	ErrInvalidConfig = errors.New("vkshell: invalid config")

	// ErrAlreadyRun is returned when Run is called on a shell that has
	// already run.
	ErrAlreadyRun = errors.New("vkshell: shell already run")
)
