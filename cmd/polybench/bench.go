package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/errs"

	"github.com/njchilds90/gopoly"
)

var errFlags = errs.Class("flags")

type benchConfig struct {
	Terms  int
	Degree int
	Runs   int
}

func (c benchConfig) validate() error {
	if c.Terms <= 0 || c.Degree < 0 || c.Runs <= 0 {
		return errFlags.New("terms and runs must be positive and degree non-negative (terms=%d degree=%d runs=%d)", c.Terms, c.Degree, c.Runs)
	}
	return nil
}

// randomPoly draws cfg.Terms terms with coefficients in [-9, 9] and exponents
// in [0, cfg.Degree]. Duplicates and zeros are left in on purpose so the
// normalization path is part of what gets timed.
func randomPoly(r *rand.Rand, cfg benchConfig) *gopoly.Polynomial {
	ts := make([]gopoly.Term, cfg.Terms)
	for i := range ts {
		ts[i] = gopoly.T(int64(r.Intn(19)-9), r.Intn(cfg.Degree+1))
	}
	return gopoly.New(ts...)
}

type result struct {
	Name    string
	Samples []float64 // microseconds
}

func (r result) summary() string {
	mean, _ := stats.Mean(r.Samples)
	median, _ := stats.Median(r.Samples)
	stddev, _ := stats.StandardDeviation(r.Samples)
	p95, _ := stats.Percentile(r.Samples, 95)
	return fmt.Sprintf("%-10s mean %10.1fµs  median %10.1fµs  stddev %9.1fµs  p95 %10.1fµs",
		r.Name, mean, median, stddev, p95)
}

func runBench(cfg benchConfig, a, b *gopoly.Polynomial) []result {
	x := gopoly.F(3, 2)
	ops := []struct {
		name string
		fn   func()
	}{
		{"normalize", func() { a.Clone().Normalize() }},
		{"add", func() { a.Add(b) }},
		{"sub", func() { a.Sub(b) }},
		{"mul", func() { a.Mul(b) }},
		{"evaluate", func() { a.Evaluate(x) }},
		{"string", func() { _ = a.String() }},
	}

	out := make([]result, len(ops))
	for i, op := range ops {
		samples := make([]float64, cfg.Runs)
		for run := range samples {
			start := time.Now()
			op.fn()
			samples[run] = float64(time.Since(start).Nanoseconds()) / 1e3
		}
		out[i] = result{Name: op.name, Samples: samples}
	}
	return out
}
