package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

var appFlags = []cli.Flag{
	cli.StringFlag{Name: "config", Value: defaultConfigFile, Usage: "JSON configuration file"},
	cli.StringFlag{Name: "board", Usage: "plain text board file, one row per line (* alive, . dead)"},
	cli.IntFlag{Name: "width", Usage: "columns of a generated board"},
	cli.IntFlag{Name: "height", Usage: "rows of a generated board"},
	cli.StringFlag{Name: "pattern", Usage: "generated board pattern: glider, blinker or random"},
	cli.Float64Flag{Name: "density", Usage: "share of live cells for the random pattern"},
	cli.Int64Flag{Name: "seed", Usage: "random pattern seed (0 picks one from the clock)"},
	cli.DurationFlag{Name: "frame-rate", Usage: "delay between generations"},
	cli.IntFlag{Name: "generations", Usage: "stop after this many generations (0 runs until the board dies or settles)"},
	cli.BoolFlag{Name: "keep-static", Usage: "keep running when the board stops changing"},
	cli.BoolFlag{Name: "no-clear", Usage: "do not clear the terminal between generations"},
	cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
}

func main() {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "run Conway's Game of Life on a finite board"
	app.Flags = appFlags
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(os.Stderr, c.String("log-level"))
	if err != nil {
		return err
	}

	config, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return err
	}
	if config == nil {
		level.Debug(logger).Log("msg", "using default configuration", "file", c.String("config"))
		defaults := utils.DefaultConfig()
		config = &defaults
	}
	applyFlags(c, config)
	if err = config.Validate(); err != nil {
		return err
	}

	board, err := initialBoard(*config)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "starting simulation", "rows", board.Rows(), "columns", board.Columns(),
		"living", board.CountLivingCells())

	generations, reason, err := runSimulation(context.Background(), os.Stdout, board, *config, logger)
	if err != nil {
		return errors.Wrap(err, "[run] simulation failed")
	}
	level.Info(logger).Log("msg", "simulation stopped", "reason", reason, "generations", generations,
		"living", board.CountLivingCells())
	return nil
}
