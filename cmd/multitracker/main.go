/*
DESCRIPTION
  multitracker lets the user select objects on the first frame of a video file
  or camera stream and then tracks and displays those objects frame by frame.

  Usage:
    multitracker [flags] [video|camera] [path|camera id] [height] [width] [tracker]

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Alan Noble <alan@ausocean.org>
  Dan Kortschak <dan@ausocean.org>
  Jack Richardson <jack@ausocean.org>
  Trek Hopton <trek@ausocean.org>
  Scott Barnard <scott@ausocean.org>
  Russell Stanley <russell@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package multitracker is an interactive multiple object tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/multitracker/config"
	"github.com/ausocean/multitracker/device"
	"github.com/ausocean/multitracker/device/file"
	"github.com/ausocean/multitracker/device/webcam"
	"github.com/ausocean/multitracker/metrics"
	"github.com/ausocean/multitracker/session"
	"github.com/ausocean/multitracker/timing"
	"github.com/ausocean/multitracker/tracker"
	"github.com/ausocean/multitracker/video"
)

// Current software version.
const version = "v0.3.0"

// Logging configuration.
const (
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
	logSuppress  = true
)

// Exit codes.
const (
	exitOK = iota
	exitBadArgs
	exitBadTracker
	exitOpen
	exitFailure
)

// Misc constants.
const (
	windowName      = "MultiTracker"
	profilePath     = "multitracker.prof"
	pkg             = "multitracker: "
	shutdownTimeout = 5 * time.Second
)

// This is set to true if the 'profile' build tag is provided on build.
var canProfile = false

// flagKeys maps named flags onto config variable keys.
var flagKeys = map[string]string{
	"log-level":      config.KeyLogging,
	"log-path":       config.KeyLogPath,
	"fps":            config.KeyFrameRate,
	"key-poll":       config.KeyKeyPoll,
	"exit-key":       config.KeyExitKey,
	"loop":           config.KeyLoop,
	"capture-width":  config.KeyCaptureWidth,
	"capture-height": config.KeyCaptureHeight,
	"metrics-addr":   config.KeyMetricsAddr,
	"plot":           config.KeyPlotPath,
}

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := defineFlags(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return exitOK
	}

	// Named flags are applied before the logger exists so that it can be
	// configured by them.
	cfg := config.Config{}
	err := cfg.Update(namedVars(flag.CommandLine))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadArgs
	}

	var w io.Writer = os.Stdout
	if cfg.LogPath != "" {
		fileLog := &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		defer fileLog.Close()
		w = io.MultiWriter(os.Stdout, fileLog)
	}
	log := logging.New(cfg.LogLevel, w, logSuppress)
	cfg.Logger = log
	log.Info("starting multitracker", "version", version)

	if canProfile {
		profile(log)
		defer pprof.StopCPUProfile()
		log.Info("profiling started")
	}

	err = cfg.ParseArgs(flag.Args())
	if err != nil {
		log.Error(pkg+"bad arguments", "error", err.Error())
		return exitBadArgs
	}
	cfg.Validate()
	log.Info("configuration", cfg.LogFields()...)

	newTracker, err := tracker.FactoryFor(cfg.Tracker)
	if err != nil {
		log.Error(pkg+"bad tracker type", "error", err.Error(), "available", strings.Join(tracker.AvailableNames(), ","))
		return exitBadTracker
	}

	input := newDevice(cfg)
	err = input.Set(cfg)
	if err != nil {
		log.Error(pkg+"could not set device", "error", err.Error())
		return exitBadArgs
	}

	rec := timing.NewRecorder()
	obs := []session.Observer{rec}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg)
		if err != nil {
			log.Error(pkg+"could not create metrics", "error", err.Error())
			return exitFailure
		}
		obs = append(obs, m)
		srv := serveMetrics(log, cfg.MetricsAddr, reg)
		defer shutdown(log, srv)
	}

	// The window is only shown once the first frame is read; Close is safe
	// after the session has closed it.
	win, err := video.NewWindow(windowName)
	if err != nil {
		log.Error(pkg+"could not create window", "error", err.Error())
		return exitFailure
	}
	defer win.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(cfg, input, win, newTracker, obs...)
	err = s.Run(ctx)
	code := exitOK
	switch {
	case errors.Is(err, session.ErrOpen):
		log.Error(pkg+"could not open input", "session", s.ID(), "error", err.Error())
		code = exitOpen
	case err != nil:
		log.Error(pkg+"session failed", "session", s.ID(), "error", err.Error())
		code = exitFailure
	}

	summary := rec.Summary()
	if summary.Frames != 0 {
		log.Info("processing times", append([]interface{}{"session", s.ID()}, summary.LogFields()...)...)
	}
	if cfg.PlotPath != "" && summary.Frames != 0 {
		err = rec.Plot(cfg.PlotPath)
		if err != nil {
			log.Warning(pkg+"could not write plot", "error", err.Error())
		}
	}
	log.Info("finished", "session", s.ID(), "state", s.State().String(), "frames", s.Frames())
	return code
}

// defineFlags defines the named flags on fs and returns the version flag.
func defineFlags(fs *flag.FlagSet) *bool {
	showVersion := fs.Bool("version", false, "show version")
	fs.String("log-level", "Info", "logging level: Debug, Info, Warning, Error or Fatal")
	fs.String("log-path", "", "file to additionally log to, rotated")
	fs.Uint("fps", 0, "frames processed per second, 0 for as fast as possible")
	fs.Duration("key-poll", time.Millisecond, "how long to wait for a key press after each frame")
	fs.Int("exit-key", 27, "key code that ends tracking, 27 is escape")
	fs.Bool("loop", false, "restart video file input at the end of the file")
	fs.Uint("capture-width", 0, "camera capture width, 0 for the camera's own resolution")
	fs.Uint("capture-height", 0, "camera capture height, 0 for the camera's own resolution")
	fs.String("metrics-addr", "", "address to serve prometheus metrics on, e.g. :9090")
	fs.String("plot", "", "file to write a PNG plot of frame processing times to")
	return showVersion
}

// namedVars returns the config variables given by the named flags of fs,
// defaults included.
func namedVars(fs *flag.FlagSet) map[string]string {
	vars := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		if k, ok := flagKeys[f.Name]; ok {
			vars[k] = f.Value.String()
		}
	})
	return vars
}

// newDevice returns the video device for the configured input.
func newDevice(c config.Config) device.VideoDevice {
	if c.Input == config.InputFile {
		return file.New(c.Logger)
	}
	return webcam.New(c.Logger)
}

// serveMetrics serves the metrics gathered by g at /metrics on addr.
func serveMetrics(l logging.Logger, addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		l.Info("serving metrics", "address", addr)
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			l.Error(pkg+"metrics server failed", "error", err.Error())
		}
	}()
	return srv
}

func shutdown(l logging.Logger, srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	if err != nil {
		l.Warning(pkg+"could not shut down metrics server", "error", err.Error())
	}
}

func profile(l logging.Logger) {
	f, err := os.Create(profilePath)
	if err != nil {
		l.Fatal(pkg+"could not create CPU profile", "error", err.Error())
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		l.Fatal(pkg+"could not start CPU profile", "error", err.Error())
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [video|camera] [path|camera id] [height] [width] [tracker]\n\n", os.Args[0])
	fmt.Fprintf(out, "%s\nFlags:\n", trackerHelp())
	flag.PrintDefaults()
}

// trackerHelp describes the tracker names that are recognised and those
// that this build can construct.
func trackerHelp() string {
	avail := tracker.AvailableNames()
	if len(avail) == 0 {
		avail = []string{"none"}
	}
	return fmt.Sprintf("Trackers: %s\nAvailable in this build: %s\n",
		strings.Join(tracker.Names(), ", "), strings.Join(avail, ", "))
}
