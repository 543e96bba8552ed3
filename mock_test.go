// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import (
	"errors"
	"slices"
	"unsafe"
)

// calls records the order of collaborator calls shared by the mocks.
type calls struct {
	log []string
}

func (c *calls) add(name string) { c.log = append(c.log, name) }

func (c *calls) count(name string) int {
	n := 0
	for _, l := range c.log {
		if l == name {
			n++
		}
	}
	return n
}

func (c *calls) index(name string) int {
	return slices.Index(c.log, name)
}

// mockWindowSystem implements WindowSystem for testing.
type mockWindowSystem struct {
	calls *calls

	initErr   error
	createErr error
	nilWindow bool

	// closeAfter is the number of ShouldClose checks that return false
	// before the window reports it should close.
	closeAfter int
	extensions []string

	procAddr unsafe.Pointer

	window   *mockWindow
	windowCf WindowConfig
}

func (m *mockWindowSystem) Name() string { return "mock" }

func (m *mockWindowSystem) Init() error {
	m.calls.add("ws.Init")
	return m.initErr
}

func (m *mockWindowSystem) CreateWindow(cfg WindowConfig) (Window, error) {
	m.calls.add("ws.CreateWindow")
	m.windowCf = cfg
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.nilWindow {
		return nil, nil
	}
	m.window = &mockWindow{ws: m}
	return m.window, nil
}

func (m *mockWindowSystem) PollEvents() {
	m.calls.add("ws.PollEvents")
}

func (m *mockWindowSystem) Terminate() {
	m.calls.add("ws.Terminate")
}

// mockWindow implements Window for testing.
type mockWindow struct {
	ws     *mockWindowSystem
	checks int
}

func (w *mockWindow) ShouldClose() bool {
	w.ws.calls.add("window.ShouldClose")
	w.checks++
	return w.checks > w.ws.closeAfter
}

func (w *mockWindow) RequiredInstanceExtensions() []string {
	w.ws.calls.add("window.RequiredInstanceExtensions")
	return w.ws.extensions
}

func (w *mockWindow) Destroy() {
	w.ws.calls.add("window.Destroy")
}

// mockLoaderWindowSystem is a mockWindowSystem that also provides a loader.
type mockLoaderWindowSystem struct {
	*mockWindowSystem
}

func (m mockLoaderWindowSystem) InstanceProcAddr() unsafe.Pointer {
	return m.procAddr
}

// mockHandle is the opaque instance value handed out by mockGraphicsAPI.
type mockHandle struct {
	id int
}

// mockGraphicsAPI implements GraphicsAPI for testing.
type mockGraphicsAPI struct {
	calls *calls

	createErr error
	handle    Instance

	desc      *InstanceDescriptor
	destroyed []Instance
}

func (m *mockGraphicsAPI) Name() string { return "mock" }

func (m *mockGraphicsAPI) CreateInstance(desc *InstanceDescriptor) (Instance, error) {
	m.calls.add("api.CreateInstance")
	m.desc = desc
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.handle, nil
}

func (m *mockGraphicsAPI) DestroyInstance(inst Instance) {
	m.calls.add("api.DestroyInstance")
	m.destroyed = append(m.destroyed, inst)
}

var errMock = errors.New("mock failure")

// newMocks returns a window system and graphics API sharing one call log.
func newMocks() (*calls, *mockWindowSystem, *mockGraphicsAPI) {
	c := &calls{}
	ws := &mockWindowSystem{
		calls:      c,
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
	}
	api := &mockGraphicsAPI{calls: c, handle: &mockHandle{id: 42}}
	return c, ws, api
}
