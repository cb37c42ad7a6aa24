package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	widthKey      = "width"
	heightKey     = "height"
	iterationsKey = "iterations"
	branchesKey   = "branches"
)

func main() {
	log.Print("Starting flow benchmark, please wait...")
	defer log.Print("Finished flow benchmark")

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure chain propagation and spread fan-out",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Event -> width x height chains of transform + store",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: widthKey, Usage: "Largest number of parallel chains", Value: 1_000},
					&cli.UintFlag{Name: heightKey, Usage: "Largest number of stores per chain", Value: 100},
					&cli.UintFlag{Name: iterationsKey, Usage: "Emissions per configuration", Value: 100},
				},
				Action: propagate,
			},
			{
				Name:  "spread",
				Usage: "Event -> spread into N branches, each feeding a store",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: branchesKey, Usage: "Largest number of branches", Value: 1_000},
					&cli.UintFlag{Name: iterationsKey, Usage: "Emissions per configuration", Value: 10_000},
				},
				Action: spread,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// decades returns 1, 10, 100, ... up to and including max.
func decades(max uint64) []int {
	var out []int
	for n := uint64(1); n <= max; n *= 10 {
		out = append(out, int(n))
	}
	return out
}
