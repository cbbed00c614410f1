package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	defaults := app.NewConfig()
	runs := flag.Int("runs", 32, "number of soups to evaluate")
	generations := flag.Int("generations", 1000, "generation limit per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soup evaluations")
	width := flag.Int("width", defaults.Width, "surface width in pixels")
	height := flag.Int("height", defaults.Height, "surface height in pixels")
	cellSize := flag.Int("cell-size", defaults.CellSize, "cell edge in pixels")
	radius := flag.Int("seed-radius", defaults.SeedRadius, "half-width of the seeded square, in cells")
	seed := flag.Int64("seed", 0, "base seed (0 seeds from the clock)")
	flag.Parse()

	if *runs <= 0 || *generations < 0 || *cellSize <= 0 {
		log.Fatalf("invalid arguments: runs=%d generations=%d cell-size=%d", *runs, *generations, *cellSize)
	}
	grid := core.NewGridForSurface(*width, *height, *cellSize)
	base := core.NewClockRNG(*seed).Seed()

	start := time.Now()
	results, err := evaluate(grid.Rows, grid.Cols, *radius, *generations, *runs, *workers, base)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d soups on a %dx%d board, seed radius %d, base seed %d\n", *runs, grid.Rows, grid.Cols, *radius, base)
	for _, r := range results {
		settled := "evolving"
		if r.SettledAt >= 0 {
			settled = fmt.Sprintf("settled@%d", r.SettledAt)
		}
		if r.Extinct {
			settled += " extinct"
		}
		fmt.Printf("  seed %d center (%d,%d): initial %d peak %d final %d after %d steps, %s\n",
			r.Seed, r.Center[0], r.Center[1], r.InitialPopulation, r.PeakPopulation, r.FinalPopulation, r.StepsSimulated, settled)
	}
	printSummary(os.Stdout, results, time.Since(start))
}

// evaluate runs the soups on a bounded worker pool. Results come back in
// seed order.
func evaluate(rows, cols, radius, generations, runs, workers int, base int64) ([]life.SoupResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]life.SoupResult, runs)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range results {
		eg.Go(func() error {
			results[i] = life.RunSoup(life.SoupConfig{
				Rows:        rows,
				Cols:        cols,
				Radius:      radius,
				Generations: generations,
				Seed:        base + int64(i),
			})
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printSummary writes the aggregate line. The median is the upper middle
// final population for an even number of runs.
func printSummary(w io.Writer, results []life.SoupResult, elapsed time.Duration) {
	if len(results) == 0 {
		fmt.Fprintln(w, "\nSummary: no soups evaluated")
		return
	}
	finals := make([]int, 0, len(results))
	extinct, settled := 0, 0
	for _, r := range results {
		finals = append(finals, r.FinalPopulation)
		if r.Extinct {
			extinct++
		}
		if r.SettledAt >= 0 {
			settled++
		}
	}
	sort.Ints(finals)
	fmt.Fprintf(w, "\nSummary: %d settled, %d extinct, median final population %d, max %d (%.2fs)\n",
		settled, extinct, finals[len(finals)/2], finals[len(finals)-1], elapsed.Seconds())
}
