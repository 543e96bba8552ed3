// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import glfw3 "github.com/go-gl/glfw/v3.3/glfw"

// Window is a GLFW window.
type Window struct {
	w *glfw3.Window
}

// ShouldClose reports whether the close flag of the window is set.
func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

// RequiredInstanceExtensions returns the instance extensions GLFW needs to
// create Vulkan surfaces on this platform.
func (w *Window) RequiredInstanceExtensions() []string {
	return w.w.GetRequiredInstanceExtensions()
}

// Destroy destroys the window. Calling Destroy twice is a no-op.
func (w *Window) Destroy() {
	if w.w == nil {
		return
	}
	w.w.Destroy()
	w.w = nil
}

// GLFW returns the underlying GLFW window, or nil after Destroy.
func (w *Window) GLFW() *glfw3.Window {
	return w.w
}
