package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/signalchain/flow"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func spread(ctx context.Context, cmd *cli.Command) error {
	iters := int64(cmd.Uint(iterationsKey))
	if iters == 0 {
		return fmt.Errorf("%s must be positive", iterationsKey)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"branches", "nTimes", "time", "updateRate", "checksum",
	})

	for _, n := range decades(cmd.Uint(branchesKey)) {
		log.Printf("Running spread with %d branches", n)

		keys := make([]string, n)
		scheme := flow.Scheme{}
		var updates int64
		digest := xxhash.New()
		for i := range keys {
			keys[i] = "b" + strconv.Itoa(i)
			target := flow.CreateUnit[int]()
			target.Subscribe(func(v int) {
				updates++
				digest.Write(strconv.AppendInt(nil, int64(v), 10))
			})
			scheme[keys[i]] = func(c *flow.Chain) *flow.Chain {
				return c.To(target)
			}
		}

		src := flow.CreateEvent[int]()
		flow.NewChain(src).Spread(flow.SpreadOf(func(v int) (map[string]any, bool) {
			out := make(map[string]any, len(keys))
			for i, k := range keys {
				out[k] = v + i
			}
			return out, true
		}), scheme)

		start := time.Now()
		for i := int64(0); i < iters; i++ {
			src.Call(int(i))
		}
		duration := time.Since(start)

		updateRate := float64(updates) / (float64(duration) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprint(n),
			humanize.Comma(iters),
			fmt.Sprint(duration),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", digest.Sum64()),
		})
	}
	table.Render()
	return nil
}
