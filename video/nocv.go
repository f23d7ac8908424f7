//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the gocv backed capture and window when building without OpenCV,
  as is the case on CI machines that do not have a copy of OpenCV installed.

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
)

// Capture is a stand-in for the gocv backed capture. It cannot be opened.
type Capture struct{}

// OpenFile returns ErrNoCV.
func OpenFile(path string) (*Capture, error) { return nil, ErrNoCV }

// OpenCamera returns ErrNoCV.
func OpenCamera(id, width, height int) (*Capture, error) { return nil, ErrNoCV }

func (c *Capture) Read() (Frame, error) { return nil, ErrNoCV }
func (c *Capture) Rewind() error        { return ErrNoCV }
func (c *Capture) Close() error         { return nil }

// Window is a stand-in for the gocv backed window. It cannot be opened.
type Window struct{}

// NewWindow returns ErrNoCV.
func NewWindow(name string) (*Window, error) { return nil, ErrNoCV }

func (w *Window) Select(f Frame) ([]image.Rectangle, error) { return nil, ErrNoCV }
func (w *Window) Show(f Frame) error                        { return ErrNoCV }
func (w *Window) WaitKey(d time.Duration) int               { return -1 }
func (w *Window) Close() error                              { return nil }
func (w *Window) IsOpen() bool                              { return false }
