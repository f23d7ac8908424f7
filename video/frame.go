/*
DESCRIPTION
  frame.go provides Frame, the image abstraction passed between capture
  devices, trackers and displays.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package video provides frames, capture and display for the multitracker.
// The OpenCV backed implementations are only built with the withcv tag;
// without it, opening a capture or a window returns ErrNoCV.
package video

import (
	"image"
	"image/color"
	"time"

	"github.com/pkg/errors"
)

// ErrNoCV is returned when an operation needs OpenCV but the program was
// built without the withcv tag.
var ErrNoCV = errors.New("built without OpenCV support (withcv tag)")

// ErrWrongFrame is returned when a frame from a different implementation is
// passed to an OpenCV backed operation.
var ErrWrongFrame = errors.New("unsupported frame type")

// Frame is a single decoded video frame.
type Frame interface {
	// Size returns the frame width and height as a point.
	Size() image.Point

	// Resize returns a new frame scaled to sz. The receiver is unchanged.
	Resize(sz image.Point) (Frame, error)

	// DrawRect draws the outline of r onto the frame.
	DrawRect(r image.Rectangle, c color.RGBA, thickness int) error

	// Close frees the frame.
	Close() error
}

// Display shows frames and reports key presses.
type Display interface {
	Show(f Frame) error

	// WaitKey waits up to d for a key press and returns its code, or -1 if
	// no key was pressed.
	WaitKey(d time.Duration) int

	Close() error
}

// Selector lets a user mark regions of interest on a frame. Select blocks
// until the user has finished and may return no regions.
type Selector interface {
	Select(f Frame) ([]image.Rectangle, error)
}
