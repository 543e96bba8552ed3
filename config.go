// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import "fmt"

// Default shell configuration.
const (
	DefaultWidth           = 800
	DefaultHeight          = 600
	DefaultTitle           = "Vulkan"
	DefaultApplicationName = "Vulkan Triangle example"
	DefaultEngineName      = "No Engine"
)

// Version is a major.minor.patch triple, used for application, engine and
// graphics API versions.
type Version struct {
	Major, Minor, Patch uint32
}

// APIVersion10 is the lowest stable graphics API version.
var APIVersion10 = Version{Major: 1, Minor: 0, Patch: 0}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Config describes the window and the instance metadata of a Shell.
type Config struct {
	Width  int
	Height int
	Title  string

	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
}

// DefaultConfig returns the fixed configuration used when no options are
// given: an 800x600 window titled "Vulkan" and a Vulkan 1.0 instance.
func DefaultConfig() Config {
	return Config{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		Title:              DefaultTitle,
		ApplicationName:    DefaultApplicationName,
		ApplicationVersion: Version{Major: 1},
		EngineName:         DefaultEngineName,
		EngineVersion:      Version{Major: 1},
		APIVersion:         APIVersion10,
	}
}

// Validate reports whether the configuration can be used to open a window
// and create an instance.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: empty window title", ErrInvalidConfig)
	}
	if c.ApplicationName == "" {
		return fmt.Errorf("%w: empty application name", ErrInvalidConfig)
	}
	return nil
}

// windowConfig derives the window request. The shell always asks for a
// fixed-size window without a client API context.
func (c Config) windowConfig() WindowConfig {
	return WindowConfig{
		Width:       c.Width,
		Height:      c.Height,
		Title:       c.Title,
		Resizable:   false,
		NoClientAPI: true,
	}
}
