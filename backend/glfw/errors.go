// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import "errors"

// Package errors for the GLFW window system.
var (
	// ErrVulkanUnsupported is returned by Init when GLFW cannot find a
	// Vulkan loader and an installable client driver.
	ErrVulkanUnsupported = errors.New("glfw: vulkan is not supported")

	// ErrNotInitialized is returned when a window is requested before Init.
	ErrNotInitialized = errors.New("glfw: window system not initialized")
)
