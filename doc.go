// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vkshell is the application shell of a Vulkan program: it opens one
// native window, creates one graphics instance, idles in the window event
// loop until the window is closed, and releases both in reverse order.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vkshell"
//		"github.com/gogpu/vkshell/backend"
//
//		_ "github.com/gogpu/vkshell/backend/glfw"
//		_ "github.com/gogpu/vkshell/backend/vulkan"
//	)
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//		ws, api, err := backend.Select("", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := vkshell.New(ws, api).Run(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Lifecycle
//
// A Shell moves through a fixed sequence of states:
//
//	Uninitialized -> WindowReady -> InstanceReady -> Running -> Terminated
//
// The window system is initialized and the window created first, because
// the window system reports which instance extensions are needed to present
// to its windows. The instance is destroyed first, then the window, then the
// window system is terminated. Teardown runs on every exit path, including a
// failed instance creation.
//
// # Threading
//
// GLFW requires all window calls on the main OS thread. Call Run from the
// main goroutine after runtime.LockOSThread, typically from init().
//
// # Backends
//
// Window systems and graphics APIs live in the backend sub-packages and
// register themselves on import:
//   - backend/glfw: GLFW 3.3 windows
//   - backend/x11: plain X11 windows via the X protocol
//   - backend/vulkan: Vulkan instances via the C loader
//   - backend/native: Vulkan instances via the Pure Go gogpu/wgpu HAL
package vkshell

// Version information
const (
	// ModuleVersion is the current version of the module. Graphics API
	// versions use the Version type.
	ModuleVersion = "0.1.0"
)
