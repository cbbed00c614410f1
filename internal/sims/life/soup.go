package life

import "mad-life/internal/core"

// SoupConfig describes a headless run: one reseed followed by a fixed number
// of generations.
type SoupConfig struct {
	Rows, Cols  int
	Radius      int
	Generations int
	Seed        int64
}

// SoupResult summarises how a seeded soup evolved.
type SoupResult struct {
	Seed              int64
	Center            [2]int
	InitialPopulation int
	PeakPopulation    int
	FinalPopulation   int
	StepsSimulated    int
	// SettledAt is the generation after which the board stopped changing,
	// or -1 if it was still evolving when the run ended.
	SettledAt int
	Extinct   bool
}

// RunSoup reseeds a fresh board and steps it until it settles or the
// generation limit is reached. Identical configs give identical results.
func RunSoup(cfg SoupConfig) SoupResult {
	l := New(cfg.Rows, cfg.Cols, 1, core.NewRNG(cfg.Seed), cfg.Radius)
	row, col := l.Reseed()

	res := SoupResult{
		Seed:              cfg.Seed,
		Center:            [2]int{row, col},
		InitialPopulation: l.Grid().Population(),
		SettledAt:         -1,
	}
	res.PeakPopulation = res.InitialPopulation

	for i := 0; i < cfg.Generations; i++ {
		l.Step()
		res.StepsSimulated++
		pop := l.Grid().Population()
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		// After the swap nxt holds the previous generation.
		if l.cur.Equal(l.nxt) {
			res.SettledAt = l.Generation() - 1
			break
		}
	}
	res.FinalPopulation = l.Grid().Population()
	res.Extinct = res.FinalPopulation == 0
	return res
}
