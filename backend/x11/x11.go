// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/gogpu/vkshell"
	"github.com/gogpu/vkshell/backend"
)

// ErrNotConnected is returned when a window is requested before Init.
var ErrNotConnected = errors.New("x11: not connected")

// Instance extensions needed to create Vulkan surfaces for XCB windows.
const (
	ExtensionSurface    = "VK_KHR_surface"
	ExtensionXCBSurface = "VK_KHR_xcb_surface"
)

func init() {
	backend.RegisterWindowSystem(backend.WindowX11, func() vkshell.WindowSystem {
		return New()
	})
}

// WindowSystem is a vkshell.WindowSystem over an X11 connection.
type WindowSystem struct {
	xu          *xgbutil.XUtil
	deleteAtom  xproto.Atom
	windows     map[xproto.Window]*Window
	dialDisplay string

	// events is fed by readEvents and closed when the connection is lost.
	events chan queuedEvent
	done   chan struct{}
	lost   bool
}

// queuedEvent is an event or an X error read from the connection.
type queuedEvent struct {
	ev  xgb.Event
	err xgb.Error
}

// New creates a window system that connects to $DISPLAY on Init.
func New() *WindowSystem {
	return &WindowSystem{windows: make(map[xproto.Window]*Window)}
}

// NewDisplay creates a window system that connects to the given display,
// e.g. ":1".
func NewDisplay(display string) *WindowSystem {
	s := New()
	s.dialDisplay = display
	return s
}

// Name returns the window system name.
func (s *WindowSystem) Name() string {
	return backend.WindowX11
}

// Init connects to the X server and interns WM_DELETE_WINDOW.
func (s *WindowSystem) Init() error {
	if s.xu != nil {
		return nil
	}

	var (
		xu  *xgbutil.XUtil
		err error
	)
	if s.dialDisplay == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(s.dialDisplay)
	}
	if err != nil {
		return fmt.Errorf("x11: connect: %w", err)
	}

	atom, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		xu.Conn().Close()
		return fmt.Errorf("x11: intern WM_DELETE_WINDOW: %w", err)
	}

	s.xu = xu
	s.deleteAtom = atom
	s.lost = false
	s.events = make(chan queuedEvent, 64)
	s.done = make(chan struct{})
	go readEvents(xu.Conn(), s.events, s.done)
	vkshell.Logger().Debug("x11: connected", "root", xu.RootWin())
	return nil
}

// normalHints returns the WM_NORMAL_HINTS pinning a non-resizable window to
// its size, or nil when the window may be resized.
func normalHints(cfg vkshell.WindowConfig) *icccm.NormalHints {
	if cfg.Resizable {
		return nil
	}
	w, h := uint(cfg.Width), uint(cfg.Height)
	return &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  w,
		MinHeight: h,
		MaxWidth:  w,
		MaxHeight: h,
	}
}

// CreateWindow creates, titles and maps a top-level window.
// NoClientAPI is implied: the X protocol never attaches a GL context.
func (s *WindowSystem) CreateWindow(cfg vkshell.WindowConfig) (vkshell.Window, error) {
	if s.xu == nil {
		return nil, ErrNotConnected
	}
	xu := s.xu

	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, fmt.Errorf("x11: generate window id: %w", err)
	}
	err = win.CreateChecked(xu.RootWin(), 0, 0, cfg.Width, cfg.Height,
		xproto.CwEventMask, xproto.EventMaskStructureNotify)
	if err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	if err := s.decorate(win.Id, cfg); err != nil {
		win.Destroy()
		return nil, err
	}
	win.Map()

	w := &Window{s: s, win: win}
	s.windows[win.Id] = w
	return w, nil
}

// decorate sets the title, size hints and close protocol of a new window.
func (s *WindowSystem) decorate(id xproto.Window, cfg vkshell.WindowConfig) error {
	xu := s.xu
	if err := icccm.WmNameSet(xu, id, cfg.Title); err != nil {
		return fmt.Errorf("x11: set WM_NAME: %w", err)
	}
	if err := ewmh.WmNameSet(xu, id, cfg.Title); err != nil {
		return fmt.Errorf("x11: set _NET_WM_NAME: %w", err)
	}
	if nh := normalHints(cfg); nh != nil {
		if err := icccm.WmNormalHintsSet(xu, id, nh); err != nil {
			return fmt.Errorf("x11: set WM_NORMAL_HINTS: %w", err)
		}
	}
	if err := icccm.WmProtocolsSet(xu, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("x11: set WM_PROTOCOLS: %w", err)
	}
	return nil
}

// readEvents forwards events from conn until the connection closes or done
// is closed. out is closed on return.
func readEvents(conn *xgb.Conn, out chan<- queuedEvent, done <-chan struct{}) {
	defer close(out)
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			// Both nil means the connection is closed.
			return
		}
		select {
		case out <- queuedEvent{ev: ev, err: xerr}:
		case <-done:
			return
		}
	}
}

// PollEvents dispatches the events already received without waiting for
// more. If the connection to the server is lost, every window is flagged to
// close.
func (s *WindowSystem) PollEvents() {
	if s.events == nil {
		return
	}
	for {
		select {
		case q, ok := <-s.events:
			if !ok {
				s.connectionLost()
				return
			}
			if q.err != nil {
				vkshell.Logger().Warn("x11: protocol error", "err", q.err)
				continue
			}
			s.dispatch(q.ev)
		default:
			return
		}
	}
}

// connectionLost marks every window closed and gone; the server no longer
// holds them.
func (s *WindowSystem) connectionLost() {
	if !s.lost {
		vkshell.Logger().Warn("x11: connection to X server lost", "windows", len(s.windows))
		s.lost = true
	}
	for _, w := range s.windows {
		w.closed = true
		w.gone = true
	}
}

// dispatch applies a single event to the window it targets.
func (s *WindowSystem) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ClientMessageEvent:
		if e.Format != 32 || len(e.Data.Data32) == 0 {
			return
		}
		if xproto.Atom(e.Data.Data32[0]) != s.deleteAtom {
			return
		}
		if w, ok := s.windows[e.Window]; ok {
			w.closed = true
		}
	case xproto.DestroyNotifyEvent:
		if w, ok := s.windows[e.Window]; ok {
			w.closed = true
			w.gone = true
		}
	}
}

// Terminate destroys remaining windows and closes the connection.
func (s *WindowSystem) Terminate() {
	if s.xu == nil {
		return
	}
	for _, w := range s.windows {
		w.Destroy()
	}
	close(s.done)
	s.xu.Conn().Close()
	s.xu = nil
	s.events = nil
}
