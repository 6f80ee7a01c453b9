package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/untwist"
	"github.com/tutils/untwist/counter"
	"github.com/tutils/untwist/counter/period"
	"github.com/tutils/untwist/logger"
	"github.com/tutils/untwist/platform"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure draws per second on one shared generator",
	Long: `Draw from a single generator on many goroutines and report the rate, For example:
  untwist bench --goroutines=8 --duration=5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchGoroutines <= 0 {
			return fmt.Errorf("%w: goroutines must be positive", untwist.ErrInvalidArgument)
		}
		g, err := newGenerator()
		if err != nil {
			return err
		}
		if _, ok := g.(*platform.Random); ok {
			// only the LCG family is safe to share as is
			g = untwist.NewSyncGenerator(g)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), benchDuration)
		defer cancel()
		c := runBench(ctx, g, benchGoroutines)

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d draws in %s, %.0f draws/s\n",
			c.Value(), benchDuration, float64(c.Value())/benchDuration.Seconds())
		return err
	},
}

const benchBatch = 1024

// runBench draws NextInt values on n goroutines until ctx is done.
func runBench(ctx context.Context, g untwist.Generator, n int) counter.Counter {
	c := period.NewPeriodCounter(time.Second)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				for j := 0; j < benchBatch; j++ {
					g.NextInt()
				}
				c.Add(benchBatch)
			}
		}()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	for {
		select {
		case <-ticker.C:
			logger.Log().Info().Int64("draws", c.Value()).Int64("rate", c.RatePerSec()).Msg("bench")
		case <-finished:
			return c
		}
	}
}

var (
	benchGoroutines int
	benchDuration   time.Duration
)

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.IntVarP(&benchGoroutines, "goroutines", "g", 4, "number of drawing goroutines")
	flags.DurationVarP(&benchDuration, "duration", "d", 3*time.Second, "how long to draw")
}
