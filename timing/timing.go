/*
DESCRIPTION
  timing.go provides a Recorder of per-frame processing times along with
  summary statistics and plotting of the recorded times.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package timing records how long each tracked frame takes to process.
package timing

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/multitracker/session"
)

// Plot dimensions.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// ErrNoSamples is returned by Plot when nothing has been recorded.
var ErrNoSamples = errors.New("no samples recorded")

// Recorder records the processing time of each frame. It implements
// session.Observer.
type Recorder struct {
	mu sync.Mutex
	ms []float64 // Processing times in milliseconds, in frame order.
}

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe records the processing time of a frame.
func (r *Recorder) Observe(fs session.FrameStats) {
	r.mu.Lock()
	r.ms = append(r.ms, float64(fs.Duration)/float64(time.Millisecond))
	r.mu.Unlock()
}

// Summary holds statistics of recorded processing times in milliseconds.
type Summary struct {
	Frames int
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
	Max    float64
}

// LogFields returns the summary as logging key/value pairs.
func (s Summary) LogFields() []interface{} {
	return []interface{}{
		"frames", s.Frames,
		"meanMs", s.Mean,
		"stdDevMs", s.StdDev,
		"medianMs", s.Median,
		"p95Ms", s.P95,
		"maxMs", s.Max,
	}
}

// Summary returns statistics of the times recorded so far. The zero Summary
// is returned if nothing has been recorded.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	sorted := append([]float64(nil), r.ms...)
	r.mu.Unlock()

	if len(sorted) == 0 {
		return Summary{}
	}
	sort.Float64s(sorted)

	s := Summary{
		Frames: len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// Plot writes a PNG line plot of processing time against frame index to
// path.
func (r *Recorder) Plot(path string) error {
	r.mu.Lock()
	pts := make(plotter.XYs, len(r.ms))
	for i, v := range r.ms {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	r.mu.Unlock()

	if len(pts) == 0 {
		return ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = "Frame processing time"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Time (ms)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "could not create line")
	}
	line.Width = vg.Points(1)
	p.Add(line)

	err = p.Save(plotWidth, plotHeight, path)
	if err != nil {
		return errors.Wrapf(err, "could not save plot to %s", path)
	}
	return nil
}
