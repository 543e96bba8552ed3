// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/vkshell"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Window system names.
const (
	// WindowGLFW is the name of the GLFW window system.
	WindowGLFW = "glfw"
	// WindowX11 is the name of the X11 protocol window system.
	WindowX11 = "x11"
)

// Graphics API names.
const (
	// APIVulkan is the name of the Vulkan C loader backend.
	APIVulkan = "vulkan"
	// APINative is the name of the Pure Go Vulkan backend (gogpu/wgpu).
	APINative = "native"
)

// WindowSystemFactory creates a new window system.
type WindowSystemFactory func() vkshell.WindowSystem

// GraphicsAPIFactory creates a new graphics API.
type GraphicsAPIFactory func() vkshell.GraphicsAPI
