/*
NAME
  session.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package session runs a multitracker session: it opens a video device, lets
// the user select objects on the first frame, and then tracks and displays
// those objects until the stream ends or the user exits.
package session

import (
	"context"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ausocean/multitracker/config"
	"github.com/ausocean/multitracker/device"
	"github.com/ausocean/multitracker/tracker"
	"github.com/ausocean/multitracker/video"
)

// Used to indicate package in logging.
const pkg = "session: "

// Drawing consts.
const rectThickness = 2

// ErrOpen is returned, wrapped, by Run when the video device cannot be
// opened.
var ErrOpen = errors.New("could not open video device")

// State is a stage of a session.
type State int

// Session states, in the order they are passed through.
const (
	StateInit State = iota
	StateAwaitingSelection
	StateTracking
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateAwaitingSelection:
		return "AwaitingSelection"
	case StateTracking:
		return "Tracking"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// UI is the interactive part of a session: selecting objects on the first
// frame and displaying tracked frames.
type UI interface {
	video.Selector
	video.Display
}

// FrameStats describes the processing of one tracked frame.
type FrameStats struct {
	Index    int           // Index of the frame after the first.
	Duration time.Duration // Time from read to display.
	Objects  int           // Number of tracked objects.
	Lost     int           // Number of trackers that lost their object.
}

// Observer is notified after every tracked frame.
type Observer interface {
	Observe(FrameStats)
}

// Session provides methods to run a tracking session with the configuration
// given to New. A Session is run once.
type Session struct {
	cfg        config.Config
	id         string
	input      device.VideoDevice
	ui         UI
	newTracker tracker.Factory
	observers  []Observer
	state      State

	// Populated on entering StateTracking.
	multi  *tracker.Multi
	colors []color.RGBA
	frames int
}

// New returns a new Session. The configuration is expected to have been
// validated, and newTracker to have been obtained from tracker.FactoryFor so
// that the tracker name is known to be good before any selection is made.
func New(c config.Config, input device.VideoDevice, ui UI, newTracker tracker.Factory, obs ...Observer) *Session {
	return &Session{
		cfg:        c,
		id:         uuid.NewString(),
		input:      input,
		ui:         ui,
		newTracker: newTracker,
		observers:  obs,
		state:      StateInit,
	}
}

// ID returns the identifier of the session, as used in its logs.
func (s *Session) ID() string { return s.id }

// State returns the current state of the session.
func (s *Session) State() State { return s.state }

// Frames returns the number of frames tracked after the first.
func (s *Session) Frames() int { return s.frames }

// Run runs the session to completion. End of stream, an empty selection, the
// exit key and cancellation of ctx all end the session without error. The
// video device and the UI are released before Run returns.
func (s *Session) Run(ctx context.Context) error {
	if s.state != StateInit {
		return errors.Errorf("session already run, in state %v", s.state)
	}
	defer s.setState(StateDone)
	defer s.ui.Close()

	s.log().Info(pkg+"starting", append([]interface{}{"session", s.id, "device", s.input.Name()}, s.cfg.LogFields()...)...)
	err := s.input.Start()
	if err != nil {
		return errors.Wrapf(ErrOpen, "%s: %v", s.input.Name(), err)
	}
	defer func() {
		if err := s.input.Stop(); err != nil {
			s.log().Error(pkg+"could not stop device", "error", err.Error())
		}
	}()

	s.setState(StateAwaitingSelection)
	first, boxes, err := s.selectObjects()
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}
	defer first.Close()
	if len(boxes) == 0 {
		s.log().Info(pkg + "no objects selected, exiting")
		return nil
	}

	s.setState(StateTracking)
	err = s.startTracking(first, boxes)
	if err != nil {
		return err
	}
	defer s.multi.Close()
	return s.track(ctx)
}

// selectObjects reads the first frame, resizes it and asks the user to mark
// the objects to track. A nil frame is returned if the stream is empty.
func (s *Session) selectObjects() (video.Frame, []image.Rectangle, error) {
	src, err := s.input.Read()
	if err == io.EOF {
		s.log().Warning(pkg + "no frames in stream")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read first frame")
	}
	defer src.Close()

	frame, err := src.Resize(s.size())
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not resize first frame")
	}

	s.log().Info(pkg + "select objects, press escape to finish selection")
	boxes, err := s.ui.Select(frame)
	if err != nil {
		frame.Close()
		return nil, nil, errors.Wrap(err, "could not select objects")
	}
	s.log().Info(pkg+"objects selected", "count", len(boxes))
	return frame, boxes, nil
}

// startTracking creates one tracker and one colour per box and initialises
// the trackers with the first frame.
func (s *Session) startTracking(first video.Frame, boxes []image.Rectangle) error {
	s.colors = tracker.Colors(len(boxes))
	s.multi = tracker.NewMulti()
	for i, b := range boxes {
		t, err := s.newTracker()
		if err != nil {
			s.multi.Close()
			return errors.Wrapf(err, "could not create tracker for object %d", i)
		}
		err = s.multi.Add(t, first, b)
		if err != nil {
			t.Close()
			s.multi.Close()
			return err
		}
		s.log().Debug(pkg+"tracking object", "index", i, "box", b.String())
	}
	return nil
}

// track runs the read, update, draw and display loop.
func (s *Session) track(ctx context.Context) error {
	// Pacing is independent of the key poll.
	var tick <-chan time.Time
	if s.cfg.FrameRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.log().Info(pkg+"cancelled", "frames", s.frames)
			return nil
		default:
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				s.log().Info(pkg+"cancelled", "frames", s.frames)
				return nil
			}
		}

		start := time.Now()
		done, err := s.step()
		if err != nil {
			return err
		}
		if done {
			s.log().Info(pkg+"end of stream", "frames", s.frames)
			return nil
		}

		s.notify(FrameStats{
			Index:    s.frames,
			Duration: time.Since(start),
			Objects:  s.multi.Len(),
			Lost:     s.multi.Lost(),
		})
		s.frames++

		if key := s.ui.WaitKey(s.cfg.KeyPoll); key == s.cfg.ExitKey {
			s.log().Info(pkg+"exit key pressed", "frames", s.frames)
			return nil
		}
	}
}

// step processes one frame. It returns true at the end of the stream.
func (s *Session) step() (bool, error) {
	src, err := s.input.Read()
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "could not read frame")
	}
	defer src.Close()

	frame, err := src.Resize(s.size())
	if err != nil {
		return false, errors.Wrap(err, "could not resize frame")
	}
	defer frame.Close()

	for i, r := range s.multi.Update(frame) {
		err = frame.DrawRect(r, s.colors[i], rectThickness)
		if err != nil {
			return false, errors.Wrapf(err, "could not draw object %d", i)
		}
	}

	show, err := frame.Resize(src.Size())
	if err != nil {
		return false, errors.Wrap(err, "could not resize frame for display")
	}
	defer show.Close()

	err = s.ui.Show(show)
	if err != nil {
		return false, errors.Wrap(err, "could not show frame")
	}
	return false, nil
}

func (s *Session) notify(fs FrameStats) {
	for _, o := range s.observers {
		o.Observe(fs)
	}
}

func (s *Session) size() image.Point {
	return image.Pt(int(s.cfg.Width), int(s.cfg.Height))
}

func (s *Session) setState(st State) {
	if st == s.state {
		return
	}
	s.log().Debug(pkg+"state change", "session", s.id, "from", s.state.String(), "to", st.String())
	s.state = st
}

func (s *Session) log() logging.Logger { return s.cfg.Logger }
