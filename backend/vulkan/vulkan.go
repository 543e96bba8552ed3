// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	"fmt"
	"strings"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"
)

func init() {
	backend.RegisterGraphicsAPI(backend.APIVulkan, func() vkshell.GraphicsAPI {
		return New()
	})
}

// API is a vkshell.GraphicsAPI over the Vulkan C loader.
type API struct{}

// New creates the Vulkan graphics API.
func New() *API {
	return &API{}
}

// Name returns the graphics API name.
func (a *API) Name() string {
	return backend.APIVulkan
}

// CreateInstance binds the loader and creates a VkInstance from desc.
// The returned vkshell.Instance holds a vk.Instance.
func (a *API) CreateInstance(desc *vkshell.InstanceDescriptor) (vkshell.Instance, error) {
	if err := bindLoader(desc.InstanceProcAddr); err != nil {
		return nil, err
	}

	info := createInfo(desc)
	var instance vk.Instance
	if ret := vk.CreateInstance(info, nil, &instance); ret != vk.Success {
		return nil, &ResultError{Result: ret}
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("vulkan: load instance functions: %w", err)
	}

	vkshell.Logger().Debug("vulkan: instance created",
		"application", desc.ApplicationName, "extensions", len(desc.EnabledExtensionNames))
	return instance, nil
}

// DestroyInstance destroys a VkInstance with the default allocator.
// Handles not created by this backend are ignored.
func (a *API) DestroyInstance(inst vkshell.Instance) {
	instance, ok := inst.(vk.Instance)
	if !ok || instance == nil {
		vkshell.Logger().Warn("vulkan: ignoring foreign instance handle", "type", fmt.Sprintf("%T", inst))
		return
	}
	vk.DestroyInstance(instance, nil)
}

// bindLoader points vulkan-go at procAddr, or at the system loader when
// procAddr is nil, and loads the global commands.
func bindLoader(procAddr unsafe.Pointer) error {
	if procAddr != nil {
		vk.SetGetInstanceProcAddr(procAddr)
	} else if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoader, err)
	}
	if err := vk.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoader, err)
	}
	return nil
}

// createInfo translates desc into VkInstanceCreateInfo. Counts always match
// the slices, which are passed through unmodified apart from the NUL
// terminators the C API needs.
func createInfo(desc *vkshell.InstanceDescriptor) *vk.InstanceCreateInfo {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   cstring(desc.ApplicationName),
		ApplicationVersion: version(desc.ApplicationVersion),
		PEngineName:        cstring(desc.EngineName),
		EngineVersion:      version(desc.EngineVersion),
		ApiVersion:         version(desc.APIVersion),
	}

	extensions := cstrings(desc.EnabledExtensionNames)
	layers := cstrings(desc.EnabledLayerNames)
	return &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}
}

// version packs v the way VK_MAKE_VERSION does.
func version(v vkshell.Version) uint32 {
	return vk.MakeVersion(int(v.Major), int(v.Minor), int(v.Patch))
}

func cstring(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func cstrings(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = cstring(s)
	}
	return out
}
