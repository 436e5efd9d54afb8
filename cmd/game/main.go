package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/application/game"
	"github.com/younwookim/motionkit/internal/application/replay"
	"github.com/younwookim/motionkit/internal/application/scene/playing"
	"github.com/younwookim/motionkit/internal/application/sim"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
	"github.com/younwookim/motionkit/internal/infrastructure/logging"
)

const (
	screenWidth  = 480
	screenHeight = 270
)

type options struct {
	configPath string
	recordPath string
	replayPath string
	logLevel   string
	scale      int     // window pixels per screen pixel
	ppm        float64 // screen pixels per metre
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "tuning file (.yaml or .json); embedded defaults when empty")
	fs.StringVar(&opts.recordPath, "record", "", "record input to file (e.g., -record replay.json)")
	fs.StringVar(&opts.replayPath, "replay", "", "play back a recorded trace instead of the keyboard")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.IntVar(&opts.scale, "scale", 2, "window scale")
	fs.Float64Var(&opts.ppm, "ppm", 16, "pixels per metre")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.recordPath != "" && opts.recordPath == opts.replayPath {
		return options{}, errors.New("-record and -replay must name different files")
	}
	if opts.scale < 1 || opts.ppm <= 0 {
		return options{}, fmt.Errorf("invalid scale %d / ppm %g", opts.scale, opts.ppm)
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

	if err := run(opts, log); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}

func run(opts options, log *zap.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	newDriver := func() (*sim.Driver, error) {
		return sim.New(cfg, log.Named("sim"))
	}

	var input playing.InputSource = game.NewKeyboard(game.DefaultBindings())
	dt := replay.DefaultDT
	if opts.replayPath != "" {
		data, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			return err
		}
		input = replay.NewReplayer(*data)
		dt = data.DT
		log.Info("replaying", zap.String("path", opts.replayPath), zap.String("trace", data.ID), zap.Int("frames", len(data.Frames)))
	}

	scn, err := playing.New(newDriver, input, playing.Options{
		ScreenW:    screenWidth,
		ScreenH:    screenHeight,
		Scale:      opts.ppm,
		DT:         dt,
		Stage:      "arena",
		RecordPath: opts.recordPath,
	}, log.Named("scene"))
	if err != nil {
		return err
	}

	g := game.New(scn, screenWidth, screenHeight, log)
	g.SetDT(dt)
	defer g.Close()

	ebiten.SetWindowSize(screenWidth*opts.scale, screenHeight*opts.scale)
	ebiten.SetWindowTitle("motionkit")
	ebiten.SetTPS(int(math.Round(1 / dt)))

	return ebiten.RunGame(g)
}
