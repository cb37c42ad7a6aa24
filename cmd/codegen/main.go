package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/signalchain/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxDepsKey = "max-deps"
	outKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed chain adapters for flow",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxDepsKey,
				Usage: "Highest number of dependencies to generate adapters for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "flow/adapters.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for flow adapters started !")
	defer func() {
		log.Printf("Codegen for flow adapters finished in %v", time.Since(start))
	}()

	maxDeps := int(cmd.Uint(maxDepsKey))
	out := cmd.String(outKey)
	log.Printf("Max deps: %d, output: %s", maxDeps, out)

	contents, err := format.Source([]byte(templates.AdaptersGen(maxDeps)))
	if err != nil {
		return fmt.Errorf("formatting generated adapters: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
