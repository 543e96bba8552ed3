// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides a vkshell graphics API that creates Vulkan
// instances through the Pure Go HAL of gogpu/wgpu, without cgo.
//
// Importing the package registers it under the name "native":
//
//	import _ "github.com/gogpu/vkshell/backend/native"
//
// The HAL picks the surface extensions for the running platform itself,
// so the extension and layer lists of the descriptor are informational.
package native
