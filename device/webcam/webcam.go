/*
DESCRIPTION
  webcam.go provides an implementation of VideoDevice for webcams.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package webcam provides an implementation of VideoDevice for webcams.
package webcam

import (
	"sync"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/config"
	"github.com/ausocean/multitracker/video"
)

// Used to indicate package in logging.
const pkg = "webcam: "

// Configuration field errors.
var (
	errNoCaptureWidth  = errors.New("capture height without capture width, using camera resolution")
	errNoCaptureHeight = errors.New("capture width without capture height, using camera resolution")
)

// Open is used to open a camera by index, requesting width x height if both
// are non zero. It is video.OpenCamera unless replaced, for example in
// testing.
var Open = func(id, width, height int) (Capture, error) {
	c, err := video.OpenCamera(id, width, height)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Capture is the frame source the Webcam reads from once started.
type Capture interface {
	Read() (video.Frame, error)
	Close() error
}

// Webcam is an implementation of the VideoDevice interface for a webcam
// identified by its index.
type Webcam struct {
	mu        sync.Mutex
	c         Capture
	log       logging.Logger
	cfg       config.Config
	isRunning bool
}

// New returns a new Webcam.
func New(l logging.Logger) *Webcam {
	return &Webcam{log: l}
}

// Name returns the name of the device.
func (w *Webcam) Name() string {
	return "Webcam"
}

// Set will validate the relevant fields of the given Config struct and assign
// the struct to the Webcam's Config. CameraID selects the camera. The camera
// delivers frames at its own resolution unless both CaptureWidth and
// CaptureHeight are given; if only one is given an error is added to the
// MultiError and neither is requested. Width and Height are not used here,
// they size the frames given to the trackers.
func (w *Webcam) Set(c config.Config) error {
	var errs config.MultiError
	switch {
	case c.CaptureWidth == 0 && c.CaptureHeight != 0:
		errs = append(errs, errNoCaptureWidth)
	case c.CaptureWidth != 0 && c.CaptureHeight == 0:
		errs = append(errs, errNoCaptureHeight)
	}
	if len(errs) != 0 {
		c.CaptureWidth, c.CaptureHeight = 0, 0
	}
	w.cfg = c
	if len(errs) != 0 {
		return errs
	}
	return nil
}

// Start opens the camera.
func (w *Webcam) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, err := Open(int(w.cfg.CameraID), int(w.cfg.CaptureWidth), int(w.cfg.CaptureHeight))
	if err != nil {
		return errors.Wrapf(err, "could not open web-camera %d", w.cfg.CameraID)
	}
	w.log.Debug(pkg+"camera opened", "id", w.cfg.CameraID, "captureWidth", w.cfg.CaptureWidth, "captureHeight", w.cfg.CaptureHeight)
	w.c = c
	w.isRunning = true
	return nil
}

// Stop releases the camera.
func (w *Webcam) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.c == nil {
		return nil
	}
	err := w.c.Close()
	if err != nil {
		return errors.Wrap(err, "could not close camera")
	}
	w.c = nil
	w.isRunning = false
	w.log.Debug(pkg + "camera closed")
	return nil
}

// Read returns the next frame from the camera, or io.EOF if the camera has
// stopped delivering frames.
func (w *Webcam) Read() (video.Frame, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.c == nil {
		return nil, errors.New("webcam is not started")
	}
	return w.c.Read()
}

// IsRunning is used to determine if the webcam is running.
func (w *Webcam) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}
