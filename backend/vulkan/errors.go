// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	"errors"
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Package errors for the Vulkan backend.
var (
	// ErrLoader is returned when the Vulkan loader cannot be bound.
	ErrLoader = errors.New("vulkan: loader unavailable")

	// ErrCreateInstance is returned when vkCreateInstance does not succeed.
	ErrCreateInstance = errors.New("vulkan: vkCreateInstance failed")
)

// resultNames names the results vkCreateInstance can return.
var resultNames = map[vk.Result]string{
	vk.ErrorOutOfHostMemory:      "VK_ERROR_OUT_OF_HOST_MEMORY",
	vk.ErrorOutOfDeviceMemory:    "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	vk.ErrorInitializationFailed: "VK_ERROR_INITIALIZATION_FAILED",
	vk.ErrorLayerNotPresent:      "VK_ERROR_LAYER_NOT_PRESENT",
	vk.ErrorExtensionNotPresent:  "VK_ERROR_EXTENSION_NOT_PRESENT",
	vk.ErrorIncompatibleDriver:   "VK_ERROR_INCOMPATIBLE_DRIVER",
}

// ResultError is the error for a non-success VkResult. It matches
// ErrCreateInstance with errors.Is.
type ResultError struct {
	Result vk.Result
}

func (e *ResultError) Error() string {
	name, ok := resultNames[e.Result]
	if !ok {
		name = "VkResult"
	}
	return fmt.Sprintf("%v: %s (%d)", ErrCreateInstance, name, int32(e.Result))
}

// Is reports whether target is ErrCreateInstance.
func (e *ResultError) Is(target error) bool {
	return target == ErrCreateInstance
}
