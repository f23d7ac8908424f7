//go:build withcv
// +build withcv

/*
DESCRIPTION
  window.go provides Window, a gocv window used to select regions of interest
  and to display tracked frames.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Window is a named display window. It implements Display and Selector. The
// window is opened on first use, so nothing is shown until there is a frame
// to show.
type Window struct {
	name string
	w    *gocv.Window
}

// NewWindow returns a window called name.
func NewWindow(name string) (*Window, error) {
	return &Window{name: name}, nil
}

// open opens the window if it is not already open.
func (w *Window) open() *gocv.Window {
	if w.w == nil {
		w.w = gocv.NewWindow(w.name)
	}
	return w.w
}

// Select lets the user draw rectangles on f. Each rectangle is confirmed with
// space or enter and selection is finished with escape.
func (w *Window) Select(f Frame) ([]image.Rectangle, error) {
	m, err := toMat(f)
	if err != nil {
		return nil, errors.Wrap(err, "cannot select regions")
	}
	w.open()
	return gocv.SelectROIs(w.name, m), nil
}

// Show displays f in the window.
func (w *Window) Show(f Frame) error {
	m, err := toMat(f)
	if err != nil {
		return errors.Wrap(err, "cannot show frame in window")
	}
	w.open().IMShow(m)
	return nil
}

// WaitKey waits up to d for a key press. Waits shorter than a millisecond
// are rounded up, since a zero wait blocks forever.
func (w *Window) WaitKey(d time.Duration) int {
	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return w.open().WaitKey(ms)
}

// Close closes the window if it was opened. It may be called more than once.
func (w *Window) Close() error {
	if w.w == nil {
		return nil
	}
	err := w.w.Close()
	w.w = nil
	return err
}

// IsOpen reports whether the window has been opened and not yet closed.
func (w *Window) IsOpen() bool { return w.w != nil }
