package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"mad-life/internal/sims/life"
)

func TestEvaluateKeepsSeedOrder(t *testing.T) {
	const base = 40
	results, err := evaluate(20, 24, 3, 30, 6, 2, base)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	for i, got := range results {
		want := life.RunSoup(life.SoupConfig{Rows: 20, Cols: 24, Radius: 3, Generations: 30, Seed: base + int64(i)})
		if got != want {
			t.Fatalf("result %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestEvaluateWithoutWorkers(t *testing.T) {
	results, err := evaluate(10, 10, 2, 5, 3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 || results[2].Seed != 3 {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSummarySingleRun(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, []life.SoupResult{{FinalPopulation: 17, SettledAt: 4}}, time.Second)
	out := buf.String()
	for _, want := range []string{"1 settled, 0 extinct", "median final population 17", "max 17"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary %q is missing %q", out, want)
		}
	}
}

func TestSummaryMedian(t *testing.T) {
	var buf bytes.Buffer
	results := []life.SoupResult{
		{FinalPopulation: 9, SettledAt: -1},
		{FinalPopulation: 0, SettledAt: 2, Extinct: true},
		{FinalPopulation: 4, SettledAt: -1},
	}
	printSummary(&buf, results, 0)
	if out := buf.String(); !strings.Contains(out, "1 settled, 1 extinct, median final population 4, max 9") {
		t.Fatalf("unexpected summary %q", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, nil, 0)
	if !strings.Contains(buf.String(), "no soups evaluated") {
		t.Fatalf("unexpected summary %q", buf.String())
	}
}
