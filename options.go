// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

// Option configures a Shell during creation.
//
// Example:
//
//	// Fixed defaults: 800x600 "Vulkan" window, Vulkan 1.0 instance
//	s := vkshell.New(ws, api)
//
//	// Larger window with a custom title
//	s := vkshell.New(ws, api, vkshell.WithSize(1280, 720), vkshell.WithTitle("Triangle"))
type Option func(*Config)

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithApplication sets the application name and version reported to the
// graphics API.
func WithApplication(name string, version Version) Option {
	return func(c *Config) {
		c.ApplicationName = name
		c.ApplicationVersion = version
	}
}

// WithEngine sets the engine name and version reported to the graphics API.
func WithEngine(name string, version Version) Option {
	return func(c *Config) {
		c.EngineName = name
		c.EngineVersion = version
	}
}

// WithAPIVersion sets the graphics API version the instance is created for.
func WithAPIVersion(v Version) Option {
	return func(c *Config) {
		c.APIVersion = v
	}
}
