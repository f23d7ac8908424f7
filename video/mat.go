//go:build withcv
// +build withcv

/*
DESCRIPTION
  mat.go provides Mat, the gocv backed implementation of Frame.

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
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Mat is a Frame holding a gocv.Mat. The Mat is exported so that other
// OpenCV backed packages, such as the trackers, can reach it.
type Mat struct {
	gocv.Mat
}

// NewMat wraps m. Ownership of m passes to the returned Mat.
func NewMat(m gocv.Mat) *Mat { return &Mat{Mat: m} }

// Size returns the width and height of the frame.
func (m *Mat) Size() image.Point { return image.Pt(m.Cols(), m.Rows()) }

// Resize returns a copy of the frame scaled to sz.
func (m *Mat) Resize(sz image.Point) (Frame, error) {
	dst := gocv.NewMat()
	gocv.Resize(m.Mat, &dst, sz, 0, 0, gocv.InterpolationLinear)
	if dst.Empty() {
		dst.Close()
		return nil, errors.Errorf("could not resize frame to %v", sz)
	}
	return &Mat{Mat: dst}, nil
}

// DrawRect draws the outline of r in c.
func (m *Mat) DrawRect(r image.Rectangle, c color.RGBA, thickness int) error {
	gocv.Rectangle(&m.Mat, r, c, thickness)
	return nil
}

// Close frees the underlying gocv.Mat, which has to be done manually due to
// gocv using cgo.
func (m *Mat) Close() error { return m.Mat.Close() }

// toMat returns the gocv.Mat held by f.
func toMat(f Frame) (gocv.Mat, error) {
	m, ok := f.(*Mat)
	if !ok {
		return gocv.Mat{}, errors.Wrapf(ErrWrongFrame, "%T", f)
	}
	return m.Mat, nil
}
