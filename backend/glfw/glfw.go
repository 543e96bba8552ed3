// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"fmt"
	"unsafe"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"
)

func init() {
	backend.RegisterWindowSystem(backend.WindowGLFW, func() vkshell.WindowSystem {
		return New()
	})
}

// WindowSystem is a vkshell.WindowSystem over the GLFW library.
// It also implements vkshell.LoaderProvider.
type WindowSystem struct {
	initialized bool
}

// New creates an uninitialized GLFW window system.
func New() *WindowSystem {
	return &WindowSystem{}
}

// Name returns the window system name.
func (s *WindowSystem) Name() string {
	return backend.WindowGLFW
}

// Init initializes the GLFW library and checks that Vulkan is usable.
func (s *WindowSystem) Init() error {
	if s.initialized {
		return nil
	}
	if err := glfw3.Init(); err != nil {
		return err
	}
	if !glfw3.VulkanSupported() {
		glfw3.Terminate()
		return ErrVulkanUnsupported
	}
	s.initialized = true
	vkshell.Logger().Debug("glfw: initialized", "version", glfw3.GetVersionString())
	return nil
}

// hint is a single GLFW window creation hint.
type hint struct {
	target glfw3.Hint
	value  int
}

// windowHints maps a window request onto GLFW creation hints.
func windowHints(cfg vkshell.WindowConfig) []hint {
	hints := make([]hint, 0, 2)
	if cfg.NoClientAPI {
		hints = append(hints, hint{glfw3.ClientAPI, glfw3.NoAPI})
	}
	hints = append(hints, hint{glfw3.Resizable, boolHint(cfg.Resizable)})
	return hints
}

func boolHint(b bool) int {
	if b {
		return glfw3.True
	}
	return glfw3.False
}

// CreateWindow creates a window with the requested size, title and hints.
func (s *WindowSystem) CreateWindow(cfg vkshell.WindowConfig) (vkshell.Window, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}

	glfw3.DefaultWindowHints()
	for _, h := range windowHints(cfg) {
		glfw3.WindowHint(h.target, h.value)
	}

	w, err := glfw3.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("glfw: no window for %q", cfg.Title)
	}
	return &Window{w: w}, nil
}

// PollEvents processes pending events without waiting.
func (s *WindowSystem) PollEvents() {
	glfw3.PollEvents()
}

// Terminate destroys any remaining windows and releases GLFW resources.
func (s *WindowSystem) Terminate() {
	if !s.initialized {
		return
	}
	glfw3.Terminate()
	s.initialized = false
}

// InstanceProcAddr returns GLFW's vkGetInstanceProcAddr. Valid after Init.
func (s *WindowSystem) InstanceProcAddr() unsafe.Pointer {
	if !s.initialized {
		return nil
	}
	return glfw3.GetVulkanGetInstanceProcAddress()
}
