// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend registers the window systems and graphics APIs a
// vkshell.Shell can be built from.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// Importing a backend package registers it:
//
//	import (
//		_ "github.com/gogpu/vkshell/backend/glfw"
//		_ "github.com/gogpu/vkshell/backend/vulkan"
//	)
//
// # Backend Selection
//
// Use Select to get a window system and a graphics API by name, or the
// best available ones when a name is empty:
//
//	ws, api, err := backend.Select("", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = vkshell.New(ws, api).Run()
//
// # Available Backends
//
// Window systems:
//   - "glfw": GLFW 3.3 (default)
//   - "x11": X11 protocol client, Linux only in practice
//
// Graphics APIs:
//   - "vulkan": Vulkan through the C loader (default)
//   - "native": Vulkan through the Pure Go gogpu/wgpu HAL
package backend
