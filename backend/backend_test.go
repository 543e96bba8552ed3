// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/vkshell"
)

// stubWindowSystem implements vkshell.WindowSystem for registry tests.
type stubWindowSystem struct{ name string }

func (s *stubWindowSystem) Name() string { return s.name }
func (s *stubWindowSystem) Init() error  { return nil }
func (s *stubWindowSystem) CreateWindow(vkshell.WindowConfig) (vkshell.Window, error) {
	return nil, nil
}
func (s *stubWindowSystem) PollEvents() {}
func (s *stubWindowSystem) Terminate()  {}

// stubGraphicsAPI implements vkshell.GraphicsAPI for registry tests.
type stubGraphicsAPI struct{ name string }

func (s *stubGraphicsAPI) Name() string { return s.name }
func (s *stubGraphicsAPI) CreateInstance(*vkshell.InstanceDescriptor) (vkshell.Instance, error) {
	return nil, nil
}
func (s *stubGraphicsAPI) DestroyInstance(vkshell.Instance) {}

func registerWindow(t *testing.T, name string) {
	t.Helper()
	RegisterWindowSystem(name, func() vkshell.WindowSystem { return &stubWindowSystem{name: name} })
	t.Cleanup(func() { UnregisterWindowSystem(name) })
}

func registerAPI(t *testing.T, name string) {
	t.Helper()
	RegisterGraphicsAPI(name, func() vkshell.GraphicsAPI { return &stubGraphicsAPI{name: name} })
	t.Cleanup(func() { UnregisterGraphicsAPI(name) })
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registerWindow(t, "test-window")
	registerAPI(t, "test-api")

	ws := WindowSystem("test-window")
	if ws == nil || ws.Name() != "test-window" {
		t.Errorf("WindowSystem(%q) = %v", "test-window", ws)
	}
	api := GraphicsAPI("test-api")
	if api == nil || api.Name() != "test-api" {
		t.Errorf("GraphicsAPI(%q) = %v", "test-api", api)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if ws := WindowSystem("nonexistent"); ws != nil {
		t.Errorf("WindowSystem(nonexistent) = %v, want nil", ws)
	}
	if api := GraphicsAPI("nonexistent"); api != nil {
		t.Errorf("GraphicsAPI(nonexistent) = %v, want nil", api)
	}
}

func TestRegistryAvailable(t *testing.T) {
	registerWindow(t, "b-window")
	registerWindow(t, "a-window")

	got := AvailableWindowSystems()
	if want := []string{"a-window", "b-window"}; !slices.Equal(got, want) {
		t.Errorf("AvailableWindowSystems() = %v, want %v", got, want)
	}
}

func TestRegistryUnregister(t *testing.T) {
	registerAPI(t, "temp")
	UnregisterGraphicsAPI("temp")

	if api := GraphicsAPI("temp"); api != nil {
		t.Error("GraphicsAPI() returned a backend after Unregister")
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	registerWindow(t, "zzz")
	registerWindow(t, WindowX11)
	if ws := DefaultWindowSystem(); ws == nil || ws.Name() != WindowX11 {
		t.Errorf("DefaultWindowSystem() = %v, want %s", ws, WindowX11)
	}

	registerWindow(t, WindowGLFW)
	if ws := DefaultWindowSystem(); ws == nil || ws.Name() != WindowGLFW {
		t.Errorf("DefaultWindowSystem() = %v, want %s", ws, WindowGLFW)
	}

	registerAPI(t, APINative)
	registerAPI(t, APIVulkan)
	if api := DefaultGraphicsAPI(); api == nil || api.Name() != APIVulkan {
		t.Errorf("DefaultGraphicsAPI() = %v, want %s", api, APIVulkan)
	}
}

func TestRegistryDefaultFallsBackToName(t *testing.T) {
	registerAPI(t, "second")
	registerAPI(t, "first")

	if api := DefaultGraphicsAPI(); api == nil || api.Name() != "first" {
		t.Errorf("DefaultGraphicsAPI() = %v, want first", api)
	}
}

func TestRegistryDefaultEmpty(t *testing.T) {
	if ws := DefaultWindowSystem(); ws != nil {
		t.Errorf("DefaultWindowSystem() = %v, want nil", ws)
	}
	if api := DefaultGraphicsAPI(); api != nil {
		t.Errorf("DefaultGraphicsAPI() = %v, want nil", api)
	}
}

func TestSelect(t *testing.T) {
	registerWindow(t, WindowX11)
	registerWindow(t, WindowGLFW)
	registerAPI(t, APINative)

	ws, api, err := Select("", "")
	if err != nil {
		t.Fatalf("Select() = %v", err)
	}
	if ws.Name() != WindowGLFW || api.Name() != APINative {
		t.Errorf("Select() = %s, %s", ws.Name(), api.Name())
	}

	ws, _, err = Select(WindowX11, APINative)
	if err != nil {
		t.Fatalf("Select(x11, native) = %v", err)
	}
	if ws.Name() != WindowX11 {
		t.Errorf("Select(x11) window = %s", ws.Name())
	}
}

func TestSelectUnavailable(t *testing.T) {
	registerWindow(t, WindowGLFW)
	registerAPI(t, APIVulkan)

	tests := []struct {
		window, api string
	}{
		{"wayland", ""},
		{"", "metal"},
	}
	for _, tt := range tests {
		ws, api, err := Select(tt.window, tt.api)
		if !errors.Is(err, ErrBackendNotAvailable) {
			t.Errorf("Select(%q, %q) = %v, want %v", tt.window, tt.api, err, ErrBackendNotAvailable)
		}
		if ws != nil || api != nil {
			t.Errorf("Select(%q, %q) returned backends on error", tt.window, tt.api)
		}
	}
}
