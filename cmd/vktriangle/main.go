// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command vktriangle opens an 800x600 window, creates a Vulkan instance for
// it, and waits until the window is closed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"

	_ "github.com/gogpu/vkshell/backend/glfw"
	_ "github.com/gogpu/vkshell/backend/native"
	_ "github.com/gogpu/vkshell/backend/vulkan"
	_ "github.com/gogpu/vkshell/backend/x11"
)

func init() {
	// GLFW and most platform window systems must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		windowName = flag.String("window", "", "window system (glfw, x11); empty picks the default")
		apiName    = flag.String("api", "", "graphics API (vulkan, native); empty picks the default")
		verbose    = flag.Bool("v", false, "log lifecycle details")
	)
	flag.Parse()

	os.Exit(run(*windowName, *apiName, *verbose, os.Stderr))
}

// run builds and runs the shell, returning the process exit status.
func run(windowName, apiName string, verbose bool, stderr io.Writer) int {
	vkshell.SetLogger(newLogger(verbose, stderr))

	ws, api, err := backend.Select(windowName, apiName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := vkshell.New(ws, api).Run(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// newLogger returns a text logger on w: warnings only, or everything down
// to debug when verbose.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
