//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  nocv_test.go checks that capture and display report missing OpenCV support.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"errors"
	"testing"
)

func TestNoCV(t *testing.T) {
	if _, err := OpenFile("clip.mp4"); !errors.Is(err, ErrNoCV) {
		t.Errorf("OpenFile: expected ErrNoCV, got: %v", err)
	}
	if _, err := OpenCamera(0, 320, 240); !errors.Is(err, ErrNoCV) {
		t.Errorf("OpenCamera: expected ErrNoCV, got: %v", err)
	}
	if _, err := NewWindow("MultiTracker"); !errors.Is(err, ErrNoCV) {
		t.Errorf("NewWindow: expected ErrNoCV, got: %v", err)
	}
}
