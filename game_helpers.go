package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	reasonExtinct     = "extinction"
	reasonStatic      = "static board"
	reasonMaxGens     = "maximum generations reached"
	reasonInterrupted = "interrupted"
)

// flagSource is the subset of *cli.Context read by applyFlags
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	Int(name string) int
	Int64(name string) int64
	Float64(name string) float64
	Duration(name string) time.Duration
	Bool(name string) bool
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("[newLogger] unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, opt), nil
}

// loadConfig returns nil when the file is missing and was not asked for explicitly
func loadConfig(filename string, explicit bool) (*utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if !explicit && os.IsNotExist(errors.Cause(err)) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// applyFlags overrides config with every flag set on the command line
func applyFlags(f flagSource, config *utils.Config) {
	if f.IsSet("board") {
		config.BoardFile = f.String("board")
	}
	if f.IsSet("width") {
		config.Width = f.Int("width")
	}
	if f.IsSet("height") {
		config.Height = f.Int("height")
	}
	if f.IsSet("pattern") {
		config.Pattern = f.String("pattern")
	}
	if f.IsSet("density") {
		config.RandomDensity = f.Float64("density")
	}
	if f.IsSet("seed") {
		config.Seed = f.Int64("seed")
	}
	if f.IsSet("frame-rate") {
		config.FrameRate = f.Duration("frame-rate")
	}
	if f.IsSet("generations") {
		config.MaxGenerations = f.Int("generations")
	}
	if f.Bool("keep-static") {
		config.StopWhenStatic = false
	}
	if f.Bool("no-clear") {
		config.ClearScreen = false
	}
}

// initialBoard loads the configured board file or generates the configured pattern
func initialBoard(config utils.Config) (*model.Board, error) {
	if config.BoardFile != "" {
		return model.LoadBoard(config.BoardFile)
	}

	var rows []string
	switch config.Pattern {
	case utils.PatternGlider:
		rows = model.GliderRows(config.Height, config.Width)
	case utils.PatternBlinker:
		rows = model.BlinkerRows(config.Height, config.Width)
	case utils.PatternRandom:
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rows = model.RandomRows(config.Height, config.Width, config.RandomDensity, rand.New(rand.NewSource(seed)))
	default:
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[initialBoard] unknown pattern %q", config.Pattern)
	}
	return model.NewBoard(rows...)
}

// checkStopConditions determines if the game should stop
func checkStopConditions(livingCells int, static bool, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, reasonExtinct
	}
	if static && config.StopWhenStatic {
		return true, reasonStatic
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, reasonMaxGens
	}
	return false, ""
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, board *model.Board, stats *utils.Stats) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Peak: %d | Density: %.1f%%\n",
		stats.Generation, stats.Population, stats.PeakPopulation, stats.Density(board.Rows()*board.Columns()))
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(w)
}

// runGame renders and advances the board until a stop condition holds or ctx is done.
// It returns the generation shown last and why the loop ended.
func runGame(ctx context.Context, w io.Writer, board *model.Board, config utils.Config, logger log.Logger) (int, string, error) {
	var (
		renderer      = &model.TerminalRenderer{ClearScreen: config.ClearScreen}
		stats         = utils.NewStats()
		generation    = 0
		lastHash      string
		lastFrameTime = time.Now()
	)

	for {
		frameStart := time.Now()
		livingCells := board.CountLivingCells()
		stats.Record(generation, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := renderer.Clear(w); err != nil {
			return generation, "", err
		}
		displayGameStatus(w, board, stats)
		if err := renderer.Display(w, board); err != nil {
			return generation, "", err
		}

		hash := board.Hash()
		if stop, reason := checkStopConditions(livingCells, hash == lastHash, generation, config); stop {
			return generation, reason, nil
		}
		lastHash = hash

		select {
		case <-ctx.Done():
			return generation, reasonInterrupted, nil
		case <-time.After(config.FrameRate):
		}

		board.NextGeneration()
		generation++
		level.Debug(logger).Log("msg", "advanced board", "generation", generation)
	}
}

// runSimulation runs the game loop next to a watcher that cancels it on SIGINT or SIGTERM
func runSimulation(ctx context.Context, w io.Writer, board *model.Board, config utils.Config, logger log.Logger) (int, string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		generations int
		reason      string
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			level.Info(logger).Log("msg", "shutting down", "signal", sig.String())
			cancel()
		case <-egCtx.Done():
		}
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		var err error
		generations, reason, err = runGame(egCtx, w, board, config, logger)
		return err
	})

	if err := eg.Wait(); err != nil {
		return generations, reason, err
	}
	return generations, reason, nil
}
