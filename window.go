// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import "unsafe"

// WindowConfig describes the window a WindowSystem is asked to create.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Resizable allows the user to resize the window.
	Resizable bool

	// NoClientAPI tells the window system not to attach an OpenGL or
	// OpenGL ES context; the graphics API attaches to the window itself.
	NoClientAPI bool
}

// WindowSystem is the platform windowing layer.
//
// Init must be called before any other method and Terminate last; Terminate
// releases every window still open and all platform resources.
type WindowSystem interface {
	// Name returns the window system name (e.g., "glfw", "x11").
	Name() string

	// Init initializes process-wide window system state.
	Init() error

	// CreateWindow creates and shows a window.
	CreateWindow(cfg WindowConfig) (Window, error)

	// PollEvents processes pending events and returns without waiting.
	PollEvents()

	// Terminate shuts down the window system.
	Terminate()
}

// Window is a native window created by a WindowSystem.
type Window interface {
	// ShouldClose reports whether the window has been asked to close,
	// typically because the user clicked its close control.
	ShouldClose() bool

	// RequiredInstanceExtensions returns the graphics instance extensions
	// needed to present to this window on the current platform.
	RequiredInstanceExtensions() []string

	// Destroy destroys the window.
	Destroy()
}

// LoaderProvider is implemented by window systems that bundle their own
// Vulkan loader entry point (vkGetInstanceProcAddr). The shell hands it to
// the graphics API through InstanceDescriptor.InstanceProcAddr.
type LoaderProvider interface {
	InstanceProcAddr() unsafe.Pointer
}
