/*
DESCRIPTION
  timing_test.go provides testing for the Recorder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package timing

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/multitracker/session"
)

func record(r *Recorder, ms ...int) {
	for i, v := range ms {
		r.Observe(session.FrameStats{Index: i, Duration: time.Duration(v) * time.Millisecond})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		ms   []int
		want Summary
	}{
		{
			ms:   nil,
			want: Summary{},
		},
		{
			ms:   []int{4},
			want: Summary{Frames: 1, Mean: 4, Median: 4, P95: 4, Max: 4},
		},
		{
			// Out of order to check that quantiles do not depend on order.
			ms: []int{5, 1, 4, 2, 3},
			want: Summary{
				Frames: 5,
				Mean:   3,
				StdDev: math.Sqrt(2.5),
				Median: 3,
				P95:    5,
				Max:    5,
			},
		},
	}

	opt := cmpopts.EquateApprox(0, 1e-9)
	for i, test := range tests {
		r := NewRecorder()
		record(r, test.ms...)
		got := r.Summary()
		if !cmp.Equal(test.want, got, opt) {
			t.Errorf("unexpected summary for test %d\n%s", i, cmp.Diff(test.want, got, opt))
		}
	}
}

func TestPlot(t *testing.T) {
	r := NewRecorder()
	path := filepath.Join(t.TempDir(), "timing.png")

	err := r.Plot(path)
	if !errors.Is(err, ErrNoSamples) {
		t.Errorf("expected ErrNoSamples, got: %v", err)
	}

	record(r, 3, 5, 4, 9, 2)
	err = r.Plot(path)
	if err != nil {
		t.Fatalf("could not plot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot is empty")
	}
}
