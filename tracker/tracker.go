/*
DESCRIPTION
  tracker.go provides the Tracker interface and constructs trackers by Kind.

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
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/video"
)

// ErrUnavailable is returned for a known Kind that this build cannot
// construct.
var ErrUnavailable = errors.New("tracker type not available in this build")

// Tracker follows a single object from frame to frame.
type Tracker interface {
	// Init starts tracking the object bounded by r in f. It returns false
	// if the tracker could not be initialised.
	Init(f video.Frame, r image.Rectangle) bool

	// Update finds the object in f. It returns false if the object was not
	// found, in which case the rectangle should not be relied upon.
	Update(f video.Frame) (image.Rectangle, bool)

	Close() error
}

// Factory constructs a new, uninitialised Tracker.
type Factory func() (Tracker, error)

// Available reports whether trackers of Kind k can be constructed.
func Available(k Kind) bool {
	_, ok := constructors[k]
	return ok
}

// AvailableNames returns the names of the Kinds that can be constructed, in
// listing order.
func AvailableNames() []string {
	var names []string
	for _, k := range Kinds() {
		if Available(k) {
			names = append(names, k.String())
		}
	}
	return names
}

// New returns a new Tracker of Kind k.
func New(k Kind) (Tracker, error) {
	if k < 0 || k >= numKinds {
		return nil, errors.Wrapf(ErrUnknownKind, "%v", k)
	}
	fn, ok := constructors[k]
	if !ok {
		return nil, errors.Wrapf(ErrUnavailable, "%v, available trackers are: %s", k, strings.Join(AvailableNames(), " "))
	}
	return fn(), nil
}

// FactoryFor checks name once and returns a Factory for the named Kind, or
// an error if the name is unknown or its Kind is unavailable.
func FactoryFor(name string) (Factory, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	if !Available(k) {
		return nil, errors.Wrapf(ErrUnavailable, "%v, available trackers are: %s", k, strings.Join(AvailableNames(), " "))
	}
	return func() (Tracker, error) { return New(k) }, nil
}
