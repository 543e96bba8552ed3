// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import (
	"fmt"
	"slices"
)

// Shell owns one window and one graphics instance and sequences their
// creation, the event loop, and their destruction.
//
// A Shell runs once. It is not safe for concurrent use; all methods must be
// called from the goroutine locked to the main OS thread.
type Shell struct {
	cfg Config
	ws  WindowSystem
	api GraphicsAPI

	window   Window
	instance Instance

	state    State
	releases teardown
}

// New creates a shell that opens its window with ws and creates its
// instance with api. Options override DefaultConfig.
func New(ws WindowSystem, api GraphicsAPI, opts ...Option) *Shell {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shell{cfg: cfg, ws: ws, api: api}
}

// Config returns the effective configuration.
func (s *Shell) Config() Config {
	return s.cfg
}

// State returns the current lifecycle state.
func (s *Shell) State() State {
	return s.state
}

// Run initializes the window and the instance, blocks in the event loop
// until the window is closed, and releases everything.
//
// Resources acquired before a failure are released before Run returns.
// A failed instance creation is reported as ErrInstanceCreation, and the
// event loop is never entered.
func (s *Shell) Run() error {
	if s.state != StateUninitialized {
		return ErrAlreadyRun
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	defer s.cleanup()

	if err := s.initWindow(); err != nil {
		return err
	}
	if err := s.initGraphicsInstance(); err != nil {
		return err
	}
	s.mainLoop()
	return nil
}

// initWindow initializes the window system and creates the window.
func (s *Shell) initWindow() error {
	log := Logger()

	if err := s.ws.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrWindowSystemInit, err)
	}
	s.releases.push("terminate window system", s.ws.Terminate)

	wc := s.cfg.windowConfig()
	w, err := s.ws.CreateWindow(wc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	if w == nil {
		return fmt.Errorf("%w: %s returned no window", ErrWindowCreation, s.ws.Name())
	}
	s.window = w
	s.releases.push("destroy window", func() {
		w.Destroy()
		s.window = nil
	})
	s.state = StateWindowReady

	log.Info("vkshell: window created",
		"system", s.ws.Name(), "width", wc.Width, "height", wc.Height, "title", wc.Title)
	return nil
}

// initGraphicsInstance creates the instance with the extensions the window
// system needs to present to the window.
func (s *Shell) initGraphicsInstance() error {
	log := Logger()

	desc := s.instanceDescriptor()
	inst, err := s.api.CreateInstance(desc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInstanceCreation, err)
	}
	s.instance = inst
	s.releases.push("destroy instance", func() {
		s.api.DestroyInstance(inst)
		s.instance = nil
	})
	s.state = StateInstanceReady

	log.Info("vkshell: instance created",
		"api", s.api.Name(), "version", desc.APIVersion.String(), "extensions", desc.EnabledExtensionNames)
	return nil
}

// instanceDescriptor builds the descriptor from the config and the
// window's required extensions. The extension list is passed through as
// reported, without layers.
func (s *Shell) instanceDescriptor() *InstanceDescriptor {
	desc := &InstanceDescriptor{
		ApplicationName:       s.cfg.ApplicationName,
		ApplicationVersion:    s.cfg.ApplicationVersion,
		EngineName:            s.cfg.EngineName,
		EngineVersion:         s.cfg.EngineVersion,
		APIVersion:            s.cfg.APIVersion,
		EnabledExtensionNames: slices.Clone(s.window.RequiredInstanceExtensions()),
		EnabledLayerNames:     nil,
	}
	if lp, ok := s.ws.(LoaderProvider); ok {
		desc.InstanceProcAddr = lp.InstanceProcAddr()
	}
	return desc
}

// mainLoop dispatches window events until the window is asked to close.
func (s *Shell) mainLoop() {
	s.state = StateRunning
	Logger().Debug("vkshell: entering event loop")

	for !s.window.ShouldClose() {
		s.ws.PollEvents()
	}

	Logger().Debug("vkshell: window closed")
}

// cleanup destroys the instance, then the window, then terminates the
// window system, skipping whatever was never acquired.
func (s *Shell) cleanup() {
	s.releases.unwind()
	s.state = StateTerminated
}
