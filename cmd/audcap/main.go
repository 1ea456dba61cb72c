// SPDX-License-Identifier: EPL-2.0

// Command audcap captures audio into 4096-sample PCM16 frames, either from a
// decoded file (replay) or from the default microphone (record), and stores
// them as WAV or raw PCM16LE.
//
//	audcap replay [-config file] <input.{wav,mp3,ogg,aiff}> <output.{wav,pcm}>
//	audcap record [-config file] [-duration d] <output.{wav,pcm}>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/audcap"
	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/internal/config"
	"github.com/ik5/audcap/internal/mic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const usage = `usage:
  audcap replay [-config file] <input.{wav,mp3,ogg,aiff}> <output.{wav,pcm}>
  audcap record [-config file] [-duration d] <output.{wav,pcm}>
`

var errUsage = errors.New("invalid arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "replay":
		err = replayCmd(ctx, args[1:], stderr)
	case "record":
		err = recordCmd(ctx, args[1:], stderr)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintf(stderr, "%v\n%s", err, usage)
		return 2
	default:
		fmt.Fprintf(stderr, "audcap: %v\n", err)
		return 1
	}
}

// setup loads the configuration and builds the logger and metrics registry.
func setup(path string) (config.Config, *zap.Logger, prometheus.Registerer, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	log, err := cfg.Logging.Logger()
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	var reg prometheus.Registerer
	if cfg.Metrics.Enabled() {
		reg = prometheus.DefaultRegisterer
	}

	return cfg, log, reg, nil
}

// serveMetrics exposes the default Prometheus registry until ctx ends.
func serveMetrics(ctx context.Context, cfg config.MetricsConfig, log *zap.Logger) {
	if !cfg.Enabled() {
		return
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics listening", zap.String("addr", cfg.Address), zap.String("path", cfg.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

func replayCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: replay needs an input and an output path", errUsage)
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	cfg, log, reg, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dec, err := audcap.NewDecoderRegistry().ForPath(inPath)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var src audio.Source
	src, err = dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	if cfg.Capture.MonoMix && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}
	defer src.Close()

	p, err := newPipeline(cfg.Capture, outPath, src.SampleRate(), true, log, reg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	serveMetrics(ctx, cfg.Metrics, log)

	log.Info("replay started",
		zap.String("input", inPath),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
		zap.Int("frame_size", cfg.Capture.FrameSize),
		zap.String("rounding", cfg.Capture.RoundingMode().String()),
	)

	return replayInto(ctx, p, src, cfg.Capture.Tick)
}

func recordCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	duration := fs.Duration("duration", 0, "stop after this long (0 records until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: record needs an output path", errUsage)
	}

	cfg, log, reg, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	p, err := newPipeline(cfg.Capture, fs.Arg(0), cfg.Capture.SampleRate, false, log, reg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	serveMetrics(ctx, cfg.Metrics, log)

	ctx = p.start(ctx)
	capture, err := mic.New(p.host, cfg.Capture.SampleRate, cfg.Capture.Tick, log.Named("mic"))
	if err != nil {
		return errors.Join(err, p.finish())
	}

	if err := capture.Start(); err != nil {
		return errors.Join(err, capture.Close(), p.finish())
	}

	select {
	case <-ctx.Done():
	case <-capture.Done():
	}

	return errors.Join(capture.Stop(), capture.Close(), p.finish())
}
