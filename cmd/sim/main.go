// Command sim runs input traces through the simulation without a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/motionkit/configs"
	"github.com/younwookim/motionkit/internal/application/replay"
	"github.com/younwookim/motionkit/internal/application/sim"
	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
	"github.com/younwookim/motionkit/internal/infrastructure/logging"
)

// traceList collects repeated -trace flags
type traceList []string

func (l *traceList) String() string { return strings.Join(*l, ",") }

func (l *traceList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	configPath string
	traces     traceList
	frames     int
	realtime   bool
	verify     bool
	logLevel   string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "tuning file (.yaml or .json); embedded defaults when empty")
	fs.Var(&opts.traces, "trace", "input trace to run (repeatable); the embedded demo when omitted")
	fs.IntVar(&opts.frames, "frames", 0, "frames to run per trace; idles past the end of the trace, 0 runs the trace once")
	fs.BoolVar(&opts.realtime, "realtime", false, "pace steps at the trace's frame rate")
	fs.BoolVar(&opts.verify, "verify", false, "run every trace twice and fail on any divergence")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.frames < 0 {
		return options{}, fmt.Errorf("invalid -frames %d", opts.frames)
	}
	if opts.verify && opts.realtime {
		return options{}, errors.New("-verify and -realtime are mutually exclusive")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("sim failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log *zap.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	traces, err := loadTraces(opts.traces)
	if err != nil {
		return err
	}
	newDriver := func() (*sim.Driver, error) {
		return sim.New(cfg, log.Named("sim"))
	}

	if opts.verify {
		results, err := replay.Verify(ctx, traces, newDriver, runtime.GOMAXPROCS(0))
		if err != nil {
			return err
		}
		for _, res := range results {
			log.Info("trace verified",
				zap.String("trace", res.TraceID),
				zap.Int("frames", res.Frames),
				zap.String("digest", fmt.Sprintf("%016x", res.FinalDigest())),
			)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, trace := range traces {
		g.Go(func() error {
			snap, err := play(ctx, trace, newDriver, opts.frames, opts.realtime)
			if err != nil {
				return err
			}
			logSummary(log, trace.ID, snap)
			return nil
		})
	}
	return g.Wait()
}

func loadTraces(paths []string) ([]replay.ReplayData, error) {
	if len(paths) == 0 {
		data, err := replay.LoadReplayFS(configs.FS, configs.DemoTrace)
		if err != nil {
			return nil, err
		}
		return []replay.ReplayData{*data}, nil
	}

	traces := make([]replay.ReplayData, 0, len(paths))
	for _, p := range paths {
		data, err := replay.LoadReplay(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		traces = append(traces, *data)
	}
	return traces, nil
}

// play runs one trace on a fresh driver. With frames > 0 it runs exactly
// that many frames, idling once the trace is exhausted.
func play(ctx context.Context, data replay.ReplayData, newDriver replay.DriverFactory, frames int, realtime bool) (sim.Snapshot, error) {
	d, err := newDriver()
	if err != nil {
		return sim.Snapshot{}, err
	}
	r := replay.NewReplayer(data)

	var pace <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Duration(r.DT() * float64(time.Second)))
		defer ticker.Stop()
		pace = ticker.C
	}

	for n := 0; frames == 0 || n < frames; n++ {
		in, ok := r.GetInput()
		if !ok {
			if frames == 0 {
				break
			}
			in = entity.InputSample{}
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return d.Snapshot(), ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return d.Snapshot(), err
		}

		if err := d.Step(r.DT(), in); err != nil {
			return d.Snapshot(), fmt.Errorf("trace %s frame %d: %w", data.ID, n, err)
		}
	}
	return d.Snapshot(), nil
}

func logSummary(log *zap.Logger, traceID string, snap sim.Snapshot) {
	fields := []zap.Field{
		zap.String("trace", traceID),
		zap.Uint64("ticks", snap.Tick),
		zap.Float64("time", snap.Time),
		zap.Int("enemies", snap.Count(sim.KindEnemy)),
		zap.Int("projectiles", snap.Count(sim.KindProjectile)),
		zap.String("digest", fmt.Sprintf("%016x", replay.Digest(snap))),
	}
	if snap.Player != nil {
		if p, ok := snap.Find(snap.Player.ID); ok {
			fields = append(fields,
				zap.Float64("playerX", p.Bounds.Center.X),
				zap.Float64("playerY", p.Bounds.Center.Y),
				zap.Float64("playerHealth", p.Health),
			)
		}
	} else {
		fields = append(fields, zap.Bool("playerDespawned", true))
	}
	log.Info("trace finished", fields...)
}
