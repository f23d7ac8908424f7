//go:build withcv
// +build withcv

/*
DESCRIPTION
  capture.go provides Capture, which reads frames from a video file or a
  camera using gocv.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Capture reads frames from an opened video source.
type Capture struct {
	mu sync.Mutex
	vc *gocv.VideoCapture
}

// OpenFile opens the video file at path.
func OpenFile(path string) (*Capture, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open video file %s", path)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, errors.Errorf("video file %s not opened", path)
	}
	return &Capture{vc: vc}, nil
}

// OpenCamera opens the camera with index id. If width and height are non
// zero they are requested from the camera; the camera may ignore them.
func OpenCamera(id, width, height int) (*Capture, error) {
	vc, err := gocv.VideoCaptureDevice(id)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open camera %d", id)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, errors.Errorf("camera %d not opened", id)
	}
	if width > 0 && height > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
		vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}
	return &Capture{vc: vc}, nil
}

// Read returns the next frame. io.EOF is returned at the end of a file or
// once a camera stops delivering frames.
func (c *Capture) Read() (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vc == nil {
		return nil, errors.New("capture is closed")
	}
	m := gocv.NewMat()
	if ok := c.vc.Read(&m); !ok || m.Empty() {
		m.Close()
		return nil, io.EOF
	}
	return &Mat{Mat: m}, nil
}

// Rewind seeks back to the first frame of a file.
func (c *Capture) Rewind() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vc == nil {
		return errors.New("capture is closed")
	}
	c.vc.Set(gocv.VideoCapturePosFrames, 0)
	return nil
}

// Close releases the video source.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vc == nil {
		return nil
	}
	err := c.vc.Close()
	c.vc = nil
	return err
}
