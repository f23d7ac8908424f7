/*
DESCRIPTION
  multi.go provides Multi, which tracks several objects with one Tracker
  each.

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

	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/video"
)

// ErrInit is returned when a tracker cannot be initialised with its object.
var ErrInit = errors.New("could not initialise tracker")

// Multi holds one Tracker per tracked object along with the most recent
// rectangle of each object. Objects are indexed in the order they were added.
type Multi struct {
	trackers []Tracker
	objects  []image.Rectangle
	lost     int // Number of trackers that failed in the last Update.
}

// NewMulti returns an empty Multi.
func NewMulti() *Multi { return &Multi{} }

// Add initialises t with the object bounded by r in f and adds it. On
// failure t is not added and the caller keeps ownership of it.
func (m *Multi) Add(t Tracker, f video.Frame, r image.Rectangle) error {
	if !t.Init(f, r) {
		return errors.Wrapf(ErrInit, "object %d at %v", len(m.trackers), r)
	}
	m.trackers = append(m.trackers, t)
	m.objects = append(m.objects, r)
	return nil
}

// Update updates every tracker with f and returns the current rectangle of
// each object. A tracker that loses its object keeps its last rectangle.
func (m *Multi) Update(f video.Frame) []image.Rectangle {
	m.lost = 0
	for i, t := range m.trackers {
		r, ok := t.Update(f)
		if !ok {
			m.lost++
			continue
		}
		m.objects[i] = r
	}
	return m.Objects()
}

// Objects returns a copy of the current rectangle of each object.
func (m *Multi) Objects() []image.Rectangle {
	return append([]image.Rectangle(nil), m.objects...)
}

// Lost returns the number of trackers that did not find their object in the
// last Update.
func (m *Multi) Lost() int { return m.lost }

// Len returns the number of tracked objects.
func (m *Multi) Len() int { return len(m.trackers) }

// Close closes every tracker and returns the first error encountered.
func (m *Multi) Close() error {
	var first error
	for _, t := range m.trackers {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	m.trackers = nil
	m.objects = nil
	return first
}
