// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfw provides a vkshell window system backed by GLFW 3.3.
//
// Importing the package registers it under the name "glfw":
//
//	import _ "github.com/gogpu/vkshell/backend/glfw"
//
// GLFW must be driven from the main OS thread. Lock it before calling into
// the window system:
//
//	func init() { runtime.LockOSThread() }
//
// The window system also supplies the Vulkan loader GLFW found, so the
// graphics API uses the same loader GLFW creates surfaces with.
package glfw
