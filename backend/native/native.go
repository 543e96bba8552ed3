// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"
)

// ErrNoVulkanBackend is returned when the HAL has no Vulkan backend.
var ErrNoVulkanBackend = errors.New("native: vulkan backend not available")

func init() {
	backend.RegisterGraphicsAPI(backend.APINative, func() vkshell.GraphicsAPI {
		return New()
	})
}

// API is a vkshell.GraphicsAPI over the gogpu/wgpu Vulkan HAL.
type API struct{}

// New creates the native graphics API.
func New() *API {
	return &API{}
}

// Name returns the graphics API name.
func (a *API) Name() string {
	return backend.APINative
}

// CreateInstance creates a HAL Vulkan instance. The returned
// vkshell.Instance holds a hal.Instance.
//
// The HAL picks its own instance extensions and application info, so the
// descriptor's extension and layer lists, names, and versions are not
// forwarded to the driver. They are only logged at debug level.
func (a *API) CreateInstance(desc *vkshell.InstanceDescriptor) (vkshell.Instance, error) {
	b, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoVulkanBackend
	}

	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}

	vkshell.Logger().Debug("native: instance created",
		"application", desc.ApplicationName,
		"engine", desc.EngineName,
		"api", desc.APIVersion.String(),
		"requested_extensions", desc.EnabledExtensionNames,
		"requested_layers", desc.EnabledLayerNames)
	return instance, nil
}

// DestroyInstance destroys a HAL instance. Handles not created by this
// backend are ignored.
func (a *API) DestroyInstance(inst vkshell.Instance) {
	instance, ok := inst.(hal.Instance)
	if !ok || instance == nil {
		vkshell.Logger().Warn("native: ignoring foreign instance handle", "type", fmt.Sprintf("%T", inst))
		return
	}
	instance.Destroy()
}
