// cmd/polybench/main.go — timing report for gopoly arithmetic
//
// Builds random sparse polynomials from a keyed source, times the core
// operations over several runs and prints mean/median/stddev per operation.
//
// Usage:
//   go run ./cmd/polybench -terms 200 -degree 5000 -runs 20 -seed demo
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/go-logr/stdr"

	"github.com/njchilds90/gopoly"
)

func main() {
	terms := flag.Int("terms", 100, "Terms per operand")
	degree := flag.Int("degree", 1000, "Maximum exponent")
	runs := flag.Int("runs", 10, "Timed runs per operation")
	seed := flag.String("seed", "polybench", "Key for the deterministic term generator")
	flag.Parse()

	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("polybench")

	cfg := benchConfig{Terms: *terms, Degree: *degree, Runs: *runs}
	if err := cfg.validate(); err != nil {
		logger.Error(err, "invalid flags")
		os.Exit(2)
	}

	src, err := gopoly.NewKeyedSource([]byte(*seed))
	if err != nil {
		logger.Error(err, "building source", "seed", *seed)
		os.Exit(2)
	}
	r := rand.New(src)

	a, b := randomPoly(r, cfg), randomPoly(r, cfg)
	fmt.Println(a.Clone().Normalize().Describe())
	fmt.Println()

	for _, res := range runBench(cfg, a, b) {
		logger.V(1).Info("operation timed", "op", res.Name, "runs", len(res.Samples))
		fmt.Println(res.summary())
	}
}
