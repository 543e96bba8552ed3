// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package x11 provides a vkshell window system that talks the X11 protocol
// directly through xgb and xgbutil, without GLFW or Xlib.
//
// Importing the package registers it under the name "x11":
//
//	import _ "github.com/gogpu/vkshell/backend/x11"
//
// Windows announce WM_DELETE_WINDOW, so closing them through the window
// manager sets their close flag instead of killing the connection. The
// instance extensions reported are those needed for XCB surfaces.
package x11
