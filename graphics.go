// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import "unsafe"

// Instance is an opaque graphics API instance handle. Only the GraphicsAPI
// that created it knows its concrete type.
type Instance any

// InstanceDescriptor describes the instance to create.
type InstanceDescriptor struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	// EnabledExtensionNames are the instance extensions to enable, as
	// reported by the window system.
	EnabledExtensionNames []string

	// EnabledLayerNames are the layers to enable. The shell enables none.
	EnabledLayerNames []string

	// InstanceProcAddr is an optional loader entry point. When nil the
	// graphics API uses the system loader.
	InstanceProcAddr unsafe.Pointer
}

// GraphicsAPI is the low-level graphics API the shell creates an instance
// of.
type GraphicsAPI interface {
	// Name returns the API backend name (e.g., "vulkan", "native").
	Name() string

	// CreateInstance creates an instance from desc.
	CreateInstance(desc *InstanceDescriptor) (Instance, error)

	// DestroyInstance destroys an instance returned by CreateInstance,
	// using the default allocator.
	DestroyInstance(inst Instance)
}
