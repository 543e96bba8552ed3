// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Window is an X11 top-level window.
type Window struct {
	s   *WindowSystem
	win *xwindow.Window

	// closed is set by WM_DELETE_WINDOW or when the server destroys the
	// window; gone only in the latter case.
	closed bool
	gone   bool
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.closed
}

// RequiredInstanceExtensions returns the extensions for XCB surfaces.
func (w *Window) RequiredInstanceExtensions() []string {
	return []string{ExtensionSurface, ExtensionXCBSurface}
}

// ID returns the X window id.
func (w *Window) ID() xproto.Window {
	return w.win.Id
}

// Destroy destroys the window. Calling Destroy twice is a no-op.
func (w *Window) Destroy() {
	if _, ok := w.s.windows[w.win.Id]; !ok {
		return
	}
	delete(w.s.windows, w.win.Id)
	if !w.gone {
		w.win.Destroy()
	}
}
