/*
NAME
  config.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for a multitracker
// session.
package config

import (
	"time"

	"github.com/ausocean/utils/logging"
)

// Enums to define video sources.
const (
	// Indicates no option has been set.
	NothingDefined = iota

	InputFile
	InputCamera
)

// Config provides parameters relevant to a multitracker session. Fields left
// unset are given defaults by Validate. Once a session has been started the
// Config is not modified.
type Config struct {
	// Input defines the video source.
	//
	// Valid values are defined by enums:
	// InputFile:
	//		Read frames from a video file, the location of which must be
	//		specified in the InputPath field.
	// InputCamera:
	//		Read frames from the camera with index CameraID.
	Input uint8

	// InputPath defines the location of the video file for File input.
	InputPath string

	CameraID uint // Index of the camera used for Camera input.

	// CaptureWidth and CaptureHeight, if both set, are requested from the
	// camera. Otherwise the camera delivers frames at its own resolution.
	CaptureWidth  uint
	CaptureHeight uint

	Loop bool // If true, File input restarts from the first frame at the end.

	Height uint // Height of frames given to the trackers.
	Width  uint // Width of frames given to the trackers.

	// Tracker names the tracking algorithm used for every selected object.
	// It must be one of the names known to the tracker package.
	Tracker string

	// FrameRate caps the rate at which frames are processed. A value of 0
	// processes frames as fast as they can be read.
	FrameRate uint

	// KeyPoll is how long the display waits for a key press after each
	// frame is shown.
	KeyPoll time.Duration

	ExitKey int // Key code that ends tracking.

	// Logger holds an implementation of the Logger interface.
	// This must be set for a session to work correctly.
	Logger logging.Logger

	// LogLevel is the logging verbosity level.
	// Valid values are defined by enums from the logger package: logging.Debug,
	// logging.Info, logging.Warning logging.Error, logging.Fatal.
	LogLevel int8

	LogPath     string // If set, logs are also written to this rotating file.
	MetricsAddr string // If set, Prometheus metrics are served on this address.
	PlotPath    string // If set, a per-frame processing time plot is written here.
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate. Values that cannot be parsed
// leave the field untouched and are reported in the returned error.
func (c *Config) Update(vars map[string]string) error {
	var errs MultiError
	for _, value := range Variables {
		v, ok := vars[value.Name]
		if !ok || value.Update == nil {
			continue
		}
		if err := value.Update(c, v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return errs
	}
	return nil
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// LogFields returns the key/value pairs describing the video source,
// resolution and tracker type, for use with a structured logger.
func (c *Config) LogFields() []interface{} {
	fields := []interface{}{"source", sourceName(c.Input)}
	if c.Input == InputFile {
		fields = append(fields, "path", c.InputPath)
	} else {
		fields = append(fields, "id", c.CameraID)
	}
	return append(fields,
		"verticalRes", c.Height,
		"horizontalRes", c.Width,
		"tracker", c.Tracker,
	)
}

func sourceName(in uint8) string {
	switch in {
	case InputFile:
		return "video file"
	case InputCamera:
		return "camera"
	default:
		return "undefined"
	}
}
