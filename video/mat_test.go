//go:build withcv
// +build withcv

/*
DESCRIPTION
  mat_test.go tests the gocv backed Frame implementation.

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
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func TestMatResize(t *testing.T) {
	m := NewMat(gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3))
	defer m.Close()

	if got, want := m.Size(), image.Pt(640, 480); got != want {
		t.Fatalf("unexpected size: got %v, want %v", got, want)
	}

	r, err := m.Resize(image.Pt(320, 240))
	if err != nil {
		t.Fatalf("could not resize: %v", err)
	}
	defer r.Close()

	if got, want := r.Size(), image.Pt(320, 240); got != want {
		t.Errorf("unexpected resized size: got %v, want %v", got, want)
	}
	if got, want := m.Size(), image.Pt(640, 480); got != want {
		t.Errorf("source modified by resize: got %v, want %v", got, want)
	}
}

func TestMatDrawRect(t *testing.T) {
	m := NewMat(gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3))
	defer m.Close()

	err := m.DrawRect(image.Rect(10, 10, 50, 50), color.RGBA{255, 0, 0, 0}, 2)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	// gocv stores channels in BGR order.
	if v := m.GetVecbAt(10, 10); v[2] != 255 {
		t.Errorf("rectangle not drawn, got pixel %v", v)
	}
}

type otherFrame struct{ Frame }

func TestToMatWrongFrame(t *testing.T) {
	_, err := toMat(otherFrame{})
	if !errors.Is(err, ErrWrongFrame) {
		t.Errorf("expected ErrWrongFrame, got: %v", err)
	}
}
