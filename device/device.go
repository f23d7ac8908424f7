/*
DESCRIPTION
  device.go provides VideoDevice, an interface that describes a configurable
  video device that can be started and stopped from which frames may be
  obtained.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package device provides an interface and implementations for input devices
// that can be started and stopped from which video frames can be obtained.
package device

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/config"
	"github.com/ausocean/multitracker/video"
)

// VideoDevice describes a configurable video device from which frames can be
// obtained.
type VideoDevice interface {
	// Name returns the name of the VideoDevice.
	Name() string

	// Set allows for configuration of the VideoDevice using a Config struct.
	// All, some or none of the fields of the Config struct may be used for
	// configuration by an implementation. An implementation should specify
	// what fields are considered.
	Set(c config.Config) error

	// Start will open the VideoDevice; after which the Read method may be
	// called to obtain frames.
	Start() error

	// Stop will release the VideoDevice. From this point Reads will no longer
	// be successful.
	Stop() error

	// IsRunning is used to determine if the device is running.
	IsRunning() bool

	// Read returns the next frame, which the caller must close. io.EOF is
	// returned when no more frames are available.
	Read() (video.Frame, error)
}

// Manual is an implementation of the VideoDevice interface whose frames are
// written to it through software. Every Write blocks until the frame is
// consumed by a Read, so one Write corresponds to exactly one frame.
type Manual struct {
	mu        sync.Mutex
	isRunning bool
	frames    chan video.Frame
	done      chan struct{}
}

// NewManual provides a new Manual device.
func NewManual() *Manual {
	return &Manual{}
}

// Name returns the name of Manual i.e. "Manual".
func (m *Manual) Name() string { return "Manual" }

// Set is a stub to satisfy the VideoDevice interface; no configuration fields
// are required by Manual.
func (m *Manual) Set(c config.Config) error { return nil }

// Start prepares the device for writes and reads.
func (m *Manual) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = make(chan video.Frame)
	m.done = make(chan struct{})
	m.isRunning = true
	return nil
}

// Stop ends the stream; subsequent Reads return io.EOF.
func (m *Manual) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isRunning {
		close(m.done)
	}
	m.isRunning = false
	return nil
}

// IsRunning returns true if Start has been called and Stop has not been
// called since.
func (m *Manual) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isRunning
}

// Read returns the next written frame, or io.EOF once the device is stopped.
func (m *Manual) Read() (video.Frame, error) {
	frames, done, err := m.chans()
	if err != nil {
		return nil, err
	}
	select {
	case f := <-frames:
		return f, nil
	case <-done:
		return nil, io.EOF
	}
}

// Write hands f to the next Read. It blocks until f is read or the device is
// stopped.
func (m *Manual) Write(f video.Frame) error {
	frames, done, err := m.chans()
	if err != nil {
		return err
	}
	select {
	case frames <- f:
		return nil
	case <-done:
		return errors.New("manual input stopped, can't write")
	}
}

func (m *Manual) chans() (chan video.Frame, chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frames == nil {
		return nil, nil, errors.New("manual input has not been started")
	}
	return m.frames, m.done, nil
}
