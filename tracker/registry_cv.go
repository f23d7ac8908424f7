//go:build withcv
// +build withcv

/*
DESCRIPTION
  registry_cv.go provides the gocv backed trackers.

  OpenCV 4 moved BOOSTING, TLD, MEDIANFLOW and MOSSE into its legacy tracking
  API, which gocv does not bind, and GOTURN needs model files at run time, so
  only MIL, KCF and CSRT are constructed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tracker

import (
	"image"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/ausocean/multitracker/video"
)

var constructors = map[Kind]func() Tracker{
	MIL:  func() Tracker { return &cvTracker{t: gocv.NewTrackerMIL()} },
	KCF:  func() Tracker { return &cvTracker{t: contrib.NewTrackerKCF()} },
	CSRT: func() Tracker { return &cvTracker{t: contrib.NewTrackerCSRT()} },
}

// cvTracker adapts a gocv.Tracker to Tracker.
type cvTracker struct {
	t gocv.Tracker
}

func (c *cvTracker) Init(f video.Frame, r image.Rectangle) bool {
	m, ok := f.(*video.Mat)
	if !ok {
		return false
	}
	return c.t.Init(m.Mat, r)
}

func (c *cvTracker) Update(f video.Frame) (image.Rectangle, bool) {
	m, ok := f.(*video.Mat)
	if !ok {
		return image.Rectangle{}, false
	}
	return c.t.Update(m.Mat)
}

// Close frees resources used by gocv.
func (c *cvTracker) Close() error { return c.t.Close() }
