/*
DESCRIPTION
  file.go provides an implementation of the VideoDevice interface for video
  files.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package file provides an implementation of VideoDevice for video files.
package file

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/config"
	"github.com/ausocean/multitracker/video"
)

// Open is used to open the video at a path. It is video.OpenFile unless
// replaced, for example in testing.
var Open = func(path string) (Capture, error) {
	c, err := video.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Capture is the frame source the AVFile reads from once started.
type Capture interface {
	Read() (video.Frame, error)
	Rewind() error
	Close() error
}

// AVFile is an implementation of the VideoDevice interface for a file
// containing video data.
type AVFile struct {
	c         Capture
	path      string
	loop      bool
	isRunning bool
	log       logging.Logger
	set       bool
	mu        sync.Mutex
}

// New returns a new AVFile.
func New(l logging.Logger) *AVFile { return &AVFile{log: l} }

// NewWith returns a new AVFile with required params provided i.e. the Set
// method does not need to be called.
func NewWith(l logging.Logger, path string, loop bool) *AVFile {
	return &AVFile{log: l, path: path, loop: loop, set: true}
}

// Name returns the name of the device.
func (m *AVFile) Name() string {
	return "File"
}

// Set takes the file location from the InputPath field of the config, and
// whether to restart at the end of the file from the Loop field.
func (m *AVFile) Set(c config.Config) error {
	if c.InputPath == "" {
		return errors.New("no input path for file device")
	}
	m.path = c.InputPath
	m.loop = c.Loop
	m.set = true
	return nil
}

// Start will open the file at the location of the InputPath field of the
// config struct.
func (m *AVFile) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return errors.New("AVFile has not been set with config")
	}

	// Stream URLs and image sequence patterns are left to the backend.
	if isLocalFile(m.path) {
		if _, err := os.Stat(m.path); err != nil {
			return errors.Wrap(err, "could not open video file")
		}
	}

	c, err := Open(m.path)
	if err != nil {
		return errors.Wrap(err, "could not open video file")
	}
	m.c = c
	m.isRunning = true
	return nil
}

// Stop will close the file such that any further reads will fail.
func (m *AVFile) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.c == nil {
		return nil
	}
	err := m.c.Close()
	if err == nil {
		m.c = nil
		m.isRunning = false
		return nil
	}
	return err
}

// Read returns the next frame of the file. At the end of the file io.EOF is
// returned, unless the AVFile loops, in which case reading restarts from the
// first frame.
func (m *AVFile) Read() (video.Frame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.c == nil {
		return nil, errors.New("AV file is closed, AVFile not started")
	}

	f, err := m.c.Read()
	if err != io.EOF || !m.loop {
		return f, err
	}

	m.log.Info("looping input file")
	err = m.c.Rewind()
	if err != nil {
		return nil, errors.Wrap(err, "could not seek to start of file for input loop")
	}

	f, err = m.c.Read()
	if err != nil {
		return nil, errors.Wrap(err, "could not read after start seek")
	}
	return f, nil
}

// isLocalFile returns true if path names a single file on disk rather than a
// URL or a printf style image sequence such as img_%04d.png.
func isLocalFile(path string) bool {
	return !strings.Contains(path, "://") && !strings.Contains(path, "%")
}

// IsRunning is used to determine if the AVFile device is running.
func (m *AVFile) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c != nil && m.isRunning
}
