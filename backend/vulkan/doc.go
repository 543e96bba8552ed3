// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vulkan provides a vkshell graphics API that creates instances
// through the Vulkan C loader (github.com/vulkan-go/vulkan).
//
// Importing the package registers it under the name "vulkan":
//
//	import _ "github.com/gogpu/vkshell/backend/vulkan"
//
// The loader entry point comes from the instance descriptor when the window
// system supplies one (GLFW does), otherwise the system libvulkan is
// loaded.
package vulkan
