package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/signalchain/flow"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func addOne(oldValue int) int {
	return oldValue + 1
}

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(iterationsKey))
	if iters == 0 {
		return fmt.Errorf("%s must be positive", iterationsKey)
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Chain propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, w := range decades(cmd.Uint(widthKey)) {
		for _, h := range decades(cmd.Uint(heightKey)) {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			digest := xxhash.New()
			var buf []byte
			src := flow.CreateEvent[int]()
			for i := 0; i < w; i++ {
				var last flow.Cell = src
				var tail *flow.Store[int]
				for j := 0; j < h; j++ {
					tail = flow.CreateStore[int]()
					flow.NewChain(last).Transform(flow.Transform0(addOne)).To(tail)
					last = tail
				}
				tail.Subscribe(func(v int) {
					buf = strconv.AppendInt(buf[:0], int64(v), 10)
					digest.Write(buf)
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Call(i)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	tbl.Render()
	return nil
}
