package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"gitlab.com/aoterocom/AOCrashLab/crashlab"
	"gitlab.com/aoterocom/AOCrashLab/helpers"
)

func main() {
	lab := crashlab.CrashLab{}

	runFlags := []cli.Flag{
		&cli.StringFlag{Name: "strategy", Usage: "fixedCashout, martingale, fibonacci or dalembert"},
		&cli.Float64Flag{Name: "houseEdge", Usage: "house edge, inside (0, 1)"},
		&cli.Float64Flag{Name: "target", Usage: "cash-out multiplier, >= 1"},
		&cli.Float64Flag{Name: "bankroll", Usage: "initial bankroll per session"},
		&cli.Float64Flag{Name: "baseBet", Usage: "base bet"},
		&cli.IntFlag{Name: "rounds", Usage: "rounds per session"},
		&cli.IntFlag{Name: "sessions", Usage: "number of sessions"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 takes one from the clock"},
	}

	app := &cli.App{
		Name:  "AOCrashLab",
		Usage: "crash game probability lab: closed-form odds and Monte Carlo strategy evaluation",
		Commands: []*cli.Command{
			{
				Name:   "simulate",
				Usage:  "run one Monte Carlo batch and log the summary",
				Flags:  runFlags,
				Action: lab.Simulate,
			},
			{
				Name:   "ui",
				Usage:  "run one batch and render the dashboard",
				Flags:  runFlags,
				Action: lab.UI,
			},
			{
				Name:  "compare",
				Usage: "run every scenario of a YAML file and report the comparison",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scenarios", Value: "scenarios.yaml", Usage: "scenarios file"},
				},
				Action: lab.Compare,
			},
			{
				Name:  "serve",
				Usage: "expose the engine as a JSON API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
				},
				Action: lab.Serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Fatalln(err)
	}
}
