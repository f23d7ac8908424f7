/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, a
  function for updating the variable in the Config struct from a string, and
  finally, a validation function to check the validity of the corresponding
  field value in the Config.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"
)

// Config map Keys.
const (
	KeyCameraID      = "CameraID"
	KeyCaptureHeight = "CaptureHeight"
	KeyCaptureWidth  = "CaptureWidth"
	KeyExitKey       = "ExitKey"
	KeyFrameRate     = "FrameRate"
	KeyHeight        = "Height"
	KeyInput         = "Input"
	KeyInputPath     = "InputPath"
	KeyKeyPoll       = "KeyPoll"
	KeyLogging       = "logging"
	KeyLoop          = "Loop"
	KeyLogPath       = "LogPath"
	KeyMetricsAddr   = "MetricsAddr"
	KeyPlotPath      = "PlotPath"
	KeyTracker       = "Tracker"
	KeyWidth         = "Width"
)

// Default variable values.
const (
	defaultInput     = InputCamera
	defaultCameraID  = 0
	defaultHeight    = 240
	defaultWidth     = 320
	defaultTracker   = "TLD"
	defaultFrameRate = 0 // Unpaced.
	defaultKeyPoll   = time.Millisecond
	defaultExitKey   = 27 // Escape.
	defaultVerbosity = logging.Info
)

// FileToken is the positional source token that selects video file input.
const FileToken = "video"

// ErrBadValue is returned, wrapped, when a variable value cannot be parsed.
var ErrBadValue = errors.New("bad value")

// Variables describes the variables that can be used for multitracker control.
// These structs provide the name of the variable, a function for updating
// this variable in a Config, and a function for validating the value of the variable.
var Variables = []struct {
	Name     string
	Update   func(*Config, string) error
	Validate func(*Config)
}{
	{
		Name: KeyCameraID,
		Update: func(c *Config, v string) (err error) {
			c.CameraID, err = parseUint(KeyCameraID, v, c.CameraID)
			return err
		},
	},
	{
		Name: KeyCaptureHeight,
		Update: func(c *Config, v string) (err error) {
			c.CaptureHeight, err = parseUint(KeyCaptureHeight, v, c.CaptureHeight)
			return err
		},
	},
	{
		Name: KeyCaptureWidth,
		Update: func(c *Config, v string) (err error) {
			c.CaptureWidth, err = parseUint(KeyCaptureWidth, v, c.CaptureWidth)
			return err
		},
	},
	{
		Name: KeyExitKey,
		Update: func(c *Config, v string) (err error) {
			c.ExitKey, err = parseInt(KeyExitKey, v, c.ExitKey)
			return err
		},
		Validate: func(c *Config) {
			if c.ExitKey <= 0 {
				c.LogInvalidField(KeyExitKey, defaultExitKey)
				c.ExitKey = defaultExitKey
			}
		},
	},
	{
		Name: KeyFrameRate,
		Update: func(c *Config, v string) (err error) {
			c.FrameRate, err = parseUint(KeyFrameRate, v, c.FrameRate)
			return err
		},
	},
	{
		Name: KeyHeight,
		Update: func(c *Config, v string) (err error) {
			c.Height, err = parsePositive(KeyHeight, v, c.Height)
			return err
		},
		Validate: func(c *Config) {
			if c.Height == 0 {
				c.LogInvalidField(KeyHeight, defaultHeight)
				c.Height = defaultHeight
			}
		},
	},
	{
		Name: KeyInput,
		Update: func(c *Config, v string) error {
			// Only the exact token selects file input; anything else is a camera.
			if v == FileToken {
				c.Input = InputFile
				return nil
			}
			c.Input = InputCamera
			return nil
		},
		Validate: func(c *Config) {
			switch c.Input {
			case InputFile, InputCamera:
			default:
				c.LogInvalidField(KeyInput, defaultInput)
				c.Input = defaultInput
			}
		},
	},
	{
		Name:   KeyInputPath,
		Update: func(c *Config, v string) error { c.InputPath = v; return nil },
	},
	{
		Name: KeyKeyPoll,
		Update: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil || d < 0 {
				return errors.Wrapf(ErrBadValue, "expected non-negative duration for param %s: %q", KeyKeyPoll, v)
			}
			c.KeyPoll = d
			return nil
		},
		Validate: func(c *Config) {
			if c.KeyPoll <= 0 {
				c.LogInvalidField(KeyKeyPoll, defaultKeyPoll)
				c.KeyPoll = defaultKeyPoll
			}
		},
	},
	{
		Name: KeyLogging,
		Update: func(c *Config, v string) error {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				return errors.Wrapf(ErrBadValue, "invalid Logging param: %q", v)
			}
			return nil
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name: KeyLoop,
		Update: func(c *Config, v string) (err error) {
			c.Loop, err = parseBool(KeyLoop, v, c.Loop)
			return err
		},
	},
	{
		Name:   KeyLogPath,
		Update: func(c *Config, v string) error { c.LogPath = v; return nil },
	},
	{
		Name:   KeyMetricsAddr,
		Update: func(c *Config, v string) error { c.MetricsAddr = v; return nil },
	},
	{
		Name:   KeyPlotPath,
		Update: func(c *Config, v string) error { c.PlotPath = v; return nil },
	},
	{
		Name:   KeyTracker,
		Update: func(c *Config, v string) error { c.Tracker = v; return nil },
		Validate: func(c *Config) {
			if c.Tracker == "" {
				c.LogInvalidField(KeyTracker, defaultTracker)
				c.Tracker = defaultTracker
			}
		},
	},
	{
		Name: KeyWidth,
		Update: func(c *Config, v string) (err error) {
			c.Width, err = parsePositive(KeyWidth, v, c.Width)
			return err
		},
		Validate: func(c *Config) {
			if c.Width == 0 {
				c.LogInvalidField(KeyWidth, defaultWidth)
				c.Width = defaultWidth
			}
		},
	},
}

// MultiError collects the errors found while updating a Config or setting a
// device.
type MultiError []error

func (me MultiError) Error() string {
	if len(me) == 0 {
		panic("config: invalid use of MultiError")
	}
	return fmt.Sprintf("%v", []error(me))
}

// Unwrap allows errors.Is and errors.As to inspect the collected errors.
func (me MultiError) Unwrap() []error { return me }

// parseUint returns the parsed value of v, or old and an error if v is not
// an unsigned integer.
func parseUint(n, v string, old uint) (uint, error) {
	_v, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return old, errors.Wrapf(ErrBadValue, "expected unsigned int for param %s: %q", n, v)
	}
	return uint(_v), nil
}

func parsePositive(n, v string, old uint) (uint, error) {
	_v, err := parseUint(n, v, old)
	if err != nil {
		return old, err
	}
	if _v == 0 {
		return old, errors.Wrapf(ErrBadValue, "expected positive int for param %s: %q", n, v)
	}
	return _v, nil
}

func parseInt(n, v string, old int) (int, error) {
	_v, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return old, errors.Wrapf(ErrBadValue, "expected integer for param %s: %q", n, v)
	}
	return _v, nil
}

func parseBool(n, v string, old bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return old, errors.Wrapf(ErrBadValue, "expected bool for param %s: %q", n, v)
	}
}
