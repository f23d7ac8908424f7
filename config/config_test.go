/*
DESCRIPTION
  config_test.go provides testing for the Config struct methods (Validate,
  Update and ParseArgs).

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
	"errors"
	"testing"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

func TestValidate(t *testing.T) {
	dl := &dumbLogger{}

	want := Config{
		Logger:   dl,
		Input:    defaultInput,
		CameraID: defaultCameraID,
		Height:   defaultHeight,
		Width:    defaultWidth,
		Tracker:  defaultTracker,
		KeyPoll:  defaultKeyPoll,
		ExitKey:  defaultExitKey,
	}

	got := Config{Logger: dl}
	err := (&got).Validate()
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if !cmp.Equal(got, want) {
		t.Errorf("configs not equal\nwant: %v\ngot: %v", want, got)
	}
}

func TestUpdate(t *testing.T) {
	updateMap := map[string]string{
		"CameraID":      "2",
		"CaptureHeight": "720",
		"CaptureWidth":  "1280",
		"ExitKey":       "113",
		"FrameRate":     "30",
		"Height":        "480",
		"Input":         "video",
		"InputPath":     "/inputpath",
		"KeyPoll":       "5ms",
		"logging":       "Error",
		"Loop":          "true",
		"LogPath":       "/var/log/multitracker.log",
		"MetricsAddr":   ":9090",
		"PlotPath":      "/tmp/plot.png",
		"Tracker":       "KCF",
		"Width":         "640",
	}

	dl := &dumbLogger{}

	want := Config{
		Logger:        dl,
		CameraID:      2,
		CaptureHeight: 720,
		CaptureWidth:  1280,
		ExitKey:       113,
		FrameRate:     30,
		Height:        480,
		Input:         InputFile,
		InputPath:     "/inputpath",
		KeyPoll:       5 * time.Millisecond,
		LogLevel:      logging.Error,
		Loop:          true,
		LogPath:       "/var/log/multitracker.log",
		MetricsAddr:   ":9090",
		PlotPath:      "/tmp/plot.png",
		Tracker:       "KCF",
		Width:         640,
	}

	got := Config{Logger: dl}
	err := got.Update(updateMap)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if !cmp.Equal(want, got) {
		t.Errorf("configs not equal\nwant: %v\ngot: %v", want, got)
	}
}

func TestUpdateBadValues(t *testing.T) {
	tests := []struct {
		vars map[string]string
		want Config
	}{
		{
			vars: map[string]string{"Height": "abc"},
			want: Config{Height: 100},
		},
		{
			vars: map[string]string{"Width": "0"},
			want: Config{Width: 100},
		},
		{
			vars: map[string]string{"Width": "-5"},
			want: Config{Width: 100},
		},
		{
			vars: map[string]string{"CameraID": "1x"},
			want: Config{Height: 100, Width: 100},
		},
		{
			vars: map[string]string{"KeyPoll": "soon"},
			want: Config{Height: 100},
		},
		{
			vars: map[string]string{"logging": "Loud"},
			want: Config{Width: 100},
		},
		{
			vars: map[string]string{"Loop": "yes"},
			want: Config{Height: 100},
		},
		{
			vars: map[string]string{"CaptureWidth": "wide"},
			want: Config{Width: 100},
		},
	}

	for i, test := range tests {
		got := Config{Height: test.want.Height, Width: test.want.Width}
		err := got.Update(test.vars)
		if !errors.Is(err, ErrBadValue) {
			t.Errorf("did not get expected error for test %d\ngot: %v", i, err)
		}
		if !cmp.Equal(test.want, got) {
			t.Errorf("field modified by bad value for test %d\nwant: %v\ngot: %v", i, test.want, got)
		}
	}
}

func TestUpdateMultiError(t *testing.T) {
	c := Config{}
	err := c.Update(map[string]string{"Height": "h", "Width": "w"})
	me, ok := err.(MultiError)
	if !ok {
		t.Fatalf("expected MultiError, got %T", err)
	}
	if len(me) != 2 {
		t.Errorf("unexpected number of errors: got %d, want 2", len(me))
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		want Config
	}{
		{
			args: nil,
			want: Config{
				Input:    InputCamera,
				CameraID: 0,
				Height:   240,
				Width:    320,
				Tracker:  "TLD",
			},
		},
		{
			args: []string{"video", "/tmp/clip.mp4", "480", "640", "CSRT"},
			want: Config{
				Input:     InputFile,
				InputPath: "/tmp/clip.mp4",
				Height:    480,
				Width:     640,
				Tracker:   "CSRT",
			},
		},
		{
			args: []string{"cam"},
			want: Config{
				Input:   InputCamera,
				Height:  240,
				Width:   320,
				Tracker: "TLD",
			},
		},
		{
			args: []string{"webcam", "2", "600"},
			want: Config{
				Input:    InputCamera,
				CameraID: 2,
				Height:   600,
				Width:    320,
				Tracker:  "TLD",
			},
		},
		{
			args: []string{"video", "/a.avi", "120", "160", "KCF", "extra", "tokens"},
			want: Config{
				Input:     InputFile,
				InputPath: "/a.avi",
				Height:    120,
				Width:     160,
				Tracker:   "KCF",
			},
		},
	}

	// Fields defaulted by Validate but not reachable by positional tokens.
	opt := cmpopts.IgnoreFields(Config{}, "Logger", "KeyPoll", "ExitKey")

	for i, test := range tests {
		got := Config{Logger: &dumbLogger{}}
		err := got.ParseArgs(test.args)
		if err != nil {
			t.Errorf("did not expect error for test %d: %v", i, err)
			continue
		}
		got.Validate()
		if !cmp.Equal(test.want, got, opt) {
			t.Errorf("unexpected config for test %d\n%s", i, cmp.Diff(test.want, got, opt))
		}
	}
}

func TestParseArgsBadNumber(t *testing.T) {
	c := Config{Logger: &dumbLogger{}}
	err := c.ParseArgs([]string{"video", "/tmp/clip.mp4", "480p"})
	if !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got: %v", err)
	}
}

func TestArgsToVars(t *testing.T) {
	tests := []struct {
		args    []string
		want    map[string]string
		ignored int
	}{
		{
			args: []string{},
			want: map[string]string{},
		},
		{
			args: []string{"video", "/x.mp4"},
			want: map[string]string{KeyInput: "video", KeyInputPath: "/x.mp4"},
		},
		{
			args: []string{"camera", "1", "10", "20", "MIL", "x"},
			want: map[string]string{
				KeyInput:    "camera",
				KeyCameraID: "1",
				KeyHeight:   "10",
				KeyWidth:    "20",
				KeyTracker:  "MIL",
			},
			ignored: 1,
		},
	}

	for i, test := range tests {
		got, ignored := ArgsToVars(test.args)
		if !cmp.Equal(test.want, got) {
			t.Errorf("unexpected vars for test %d\n%s", i, cmp.Diff(test.want, got))
		}
		if ignored != test.ignored {
			t.Errorf("unexpected ignored count for test %d: got %d, want %d", i, ignored, test.ignored)
		}
	}
}

func TestLogFields(t *testing.T) {
	c := Config{Input: InputFile, InputPath: "/a.avi", Height: 240, Width: 320, Tracker: "TLD"}
	want := []interface{}{
		"source", "video file",
		"path", "/a.avi",
		"verticalRes", uint(240),
		"horizontalRes", uint(320),
		"tracker", "TLD",
	}
	if got := c.LogFields(); !cmp.Equal(want, got) {
		t.Errorf("unexpected fields\n%s", cmp.Diff(want, got))
	}

	c = Config{Input: InputCamera, CameraID: 3, Height: 240, Width: 320, Tracker: "KCF"}
	want = []interface{}{
		"source", "camera",
		"id", uint(3),
		"verticalRes", uint(240),
		"horizontalRes", uint(320),
		"tracker", "KCF",
	}
	if got := c.LogFields(); !cmp.Equal(want, got) {
		t.Errorf("unexpected fields\n%s", cmp.Diff(want, got))
	}
}
