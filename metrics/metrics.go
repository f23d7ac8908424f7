/*
DESCRIPTION
  metrics.go provides prometheus collectors that are updated after every
  tracked frame of a session.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package metrics exposes session frame statistics as prometheus metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ausocean/multitracker/session"
)

// Metric names.
const (
	namespace = "multitracker"

	nameFrames  = "frames_processed_total"
	nameLatency = "frame_processing_seconds"
	nameObjects = "tracked_objects"
	nameLost    = "tracker_lost_updates_total"
)

// Processing time buckets, in seconds, from 1ms to about 1s.
var latencyBuckets = prometheus.ExponentialBuckets(0.001, 2, 11)

// Metrics holds the collectors for a session. It implements session.Observer.
type Metrics struct {
	mu      sync.Mutex
	frames  prometheus.Counter
	latency prometheus.Histogram
	objects prometheus.Gauge
	lost    prometheus.Counter
}

// New returns a new Metrics with its collectors registered on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      nameFrames,
			Help:      "Number of frames tracked after the first.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      nameLatency,
			Help:      "Histogram of time taken to read, track, draw and display a frame.",
			Buckets:   latencyBuckets,
		}),
		objects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      nameObjects,
			Help:      "Number of objects being tracked.",
		}),
		lost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      nameLost,
			Help:      "Number of tracker updates that failed to find their object.",
		}),
	}

	for _, c := range []prometheus.Collector{m.frames, m.latency, m.objects, m.lost} {
		err := reg.Register(c)
		if err != nil {
			return nil, errors.Wrap(err, "could not register collector")
		}
	}
	return m, nil
}

// Observe updates the collectors with the statistics of one frame.
func (m *Metrics) Observe(fs session.FrameStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames.Inc()
	m.latency.Observe(fs.Duration.Seconds())
	m.objects.Set(float64(fs.Objects))
	m.lost.Add(float64(fs.Lost))
}

// Handler returns an http.Handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
