// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"
)

func TestRegistered(t *testing.T) {
	api := backend.GraphicsAPI(backend.APINative)
	if api == nil {
		t.Fatal("native graphics API is not registered")
	}
	if api.Name() != "native" {
		t.Errorf("Name() = %q, want native", api.Name())
	}
}

func TestDestroyForeignHandle(t *testing.T) {
	api := New()
	api.DestroyInstance(42)
	api.DestroyInstance(nil)
}

func TestCreateAndDestroyInstance(t *testing.T) {
	api := New()
	inst, err := api.CreateInstance(&vkshell.InstanceDescriptor{
		ApplicationName: "vkshell test",
		APIVersion:      vkshell.APIVersion10,
	})
	if err != nil {
		t.Skipf("Vulkan not available: %v", err)
	}
	if _, ok := inst.(hal.Instance); !ok {
		t.Fatalf("CreateInstance() returned %T, want hal.Instance", inst)
	}
	api.DestroyInstance(inst)
}

func TestCreateInstanceLogsDescriptor(t *testing.T) {
	var buf bytes.Buffer
	vkshell.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { vkshell.SetLogger(nil) })

	api := New()
	inst, err := api.CreateInstance(&vkshell.InstanceDescriptor{
		ApplicationName:       "vkshell test",
		APIVersion:            vkshell.APIVersion10,
		EnabledExtensionNames: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
	})
	if err != nil {
		t.Skipf("Vulkan not available: %v", err)
	}
	defer api.DestroyInstance(inst)

	out := buf.String()
	for _, want := range []string{"application=\"vkshell test\"", "requested_extensions=", "VK_KHR_xcb_surface"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
