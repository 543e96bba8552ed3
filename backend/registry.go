// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/vkshell"
)

// registry holds named factories of one backend kind.
type registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]func() T
	// Priority order for default selection (first available wins).
	priority []string
}

func newRegistry[T any](priority ...string) *registry[T] {
	return &registry[T]{
		factories: make(map[string]func() T),
		priority:  priority,
	}
}

func (r *registry[T]) register(name string, factory func() T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

func (r *registry[T]) unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

func (r *registry[T]) available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry[T]) get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	factory, ok := r.factories[name]
	if !ok {
		return zero, false
	}
	return factory(), true
}

// fallback returns the first registered backend by priority, then by name.
func (r *registry[T]) fallback() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.priority {
		if factory, ok := r.factories[name]; ok {
			return factory(), true
		}
	}

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	if len(names) == 0 {
		var zero T
		return zero, false
	}
	slices.Sort(names)
	return r.factories[names[0]](), true
}

var (
	windowSystems = newRegistry[vkshell.WindowSystem](WindowGLFW, WindowX11)
	graphicsAPIs  = newRegistry[vkshell.GraphicsAPI](APIVulkan, APINative)
)

// RegisterWindowSystem registers a window system factory with the given
// name. This is typically called from init() functions in backend packages.
// A window system with the same name is replaced.
func RegisterWindowSystem(name string, factory WindowSystemFactory) {
	windowSystems.register(name, factory)
}

// UnregisterWindowSystem removes a window system from the registry.
// This is useful for testing.
func UnregisterWindowSystem(name string) {
	windowSystems.unregister(name)
}

// AvailableWindowSystems returns the sorted names of registered window
// systems.
func AvailableWindowSystems() []string {
	return windowSystems.available()
}

// WindowSystem returns a new window system by name.
// Returns nil if the name is not registered.
func WindowSystem(name string) vkshell.WindowSystem {
	ws, _ := windowSystems.get(name)
	return ws
}

// DefaultWindowSystem returns the best available window system.
// Priority order: glfw > x11 > any other, by name.
// Returns nil if no window systems are registered.
func DefaultWindowSystem() vkshell.WindowSystem {
	ws, _ := windowSystems.fallback()
	return ws
}

// RegisterGraphicsAPI registers a graphics API factory with the given name.
// A graphics API with the same name is replaced.
func RegisterGraphicsAPI(name string, factory GraphicsAPIFactory) {
	graphicsAPIs.register(name, factory)
}

// UnregisterGraphicsAPI removes a graphics API from the registry.
func UnregisterGraphicsAPI(name string) {
	graphicsAPIs.unregister(name)
}

// AvailableGraphicsAPIs returns the sorted names of registered graphics
// APIs.
func AvailableGraphicsAPIs() []string {
	return graphicsAPIs.available()
}

// GraphicsAPI returns a new graphics API by name.
// Returns nil if the name is not registered.
func GraphicsAPI(name string) vkshell.GraphicsAPI {
	api, _ := graphicsAPIs.get(name)
	return api
}

// DefaultGraphicsAPI returns the best available graphics API.
// Priority order: vulkan > native > any other, by name.
// Returns nil if no graphics APIs are registered.
func DefaultGraphicsAPI() vkshell.GraphicsAPI {
	api, _ := graphicsAPIs.fallback()
	return api
}

// Select returns the named window system and graphics API. An empty name
// selects the default of that kind.
func Select(windowName, apiName string) (vkshell.WindowSystem, vkshell.GraphicsAPI, error) {
	var (
		ws vkshell.WindowSystem
		ok bool
	)
	if windowName == "" {
		ws, ok = windowSystems.fallback()
	} else {
		ws, ok = windowSystems.get(windowName)
	}
	if !ok || ws == nil {
		return nil, nil, fmt.Errorf("%w: window system %q (registered: %v)",
			ErrBackendNotAvailable, windowName, AvailableWindowSystems())
	}

	var api vkshell.GraphicsAPI
	if apiName == "" {
		api, ok = graphicsAPIs.fallback()
	} else {
		api, ok = graphicsAPIs.get(apiName)
	}
	if !ok || api == nil {
		return nil, nil, fmt.Errorf("%w: graphics API %q (registered: %v)",
			ErrBackendNotAvailable, apiName, AvailableGraphicsAPIs())
	}
	return ws, api, nil
}
