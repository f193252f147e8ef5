// Command sanity draws large standard normal samples from many independently seeded generators in
// parallel and reports how many of them pass the basic mean and standard deviation bounds.
package main

import (
	"os"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/BTBurke/seedrand/pkg/rng"
	"github.com/BTBurke/seedrand/pkg/stat"
)

const (
	MeanTolerance float64 = 0.1
	StdDevLow     float64 = 0.8
	StdDevHigh    float64 = 1.2
)

type results struct {
	mu     sync.Mutex
	failed []int64
	passed int
}

func (r *results) record(seed int64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.passed++
		return
	}
	r.failed = append(r.failed, seed)
}

func main() {
	pf := pflag.NewFlagSet("sanity", pflag.ExitOnError)
	start := pf.Int64("start-seed", 0, "First seed to check")
	seeds := pf.Int("seeds", 1000, "Number of consecutive seeds to check")
	samples := pf.Int("samples", 10000, "Samples drawn per seed")
	procs := pf.Int("procs", 4, "Number of parallel workers")
	verbose := pf.BoolP("verbose", "v", false, "Log every failing seed")

	log := logrus.New()
	if err := pf.Parse(os.Args[1:]); err != nil {
		log.Fatalf("could not parse flags: %v", err)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *procs < 1 || *seeds < 1 || *samples < 2 {
		log.Fatal("procs and seeds must be positive and samples at least 2")
	}

	res := &results{}
	jobs := make(chan int64)
	var wg sync.WaitGroup
	began := time.Now()
	for p := 0; p < *procs; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				check(log, res, seed, *samples)
			}
		}()
	}
	for s := 0; s < *seeds; s++ {
		jobs <- *start + int64(s)
	}
	close(jobs)
	wg.Wait()
	log.WithField("elapsed", time.Since(began)).Info("sanity run finished")

	e := logfmt.NewEncoder(os.Stdout)
	if err := e.EncodeKeyvals("seeds", *seeds, "samples", *samples, "passed", res.passed, "failed", len(res.failed),
		"pass_rate", float64(res.passed)/float64(*seeds)); err != nil {
		log.Fatalf("could not write results: %v", err)
	}
	if err := e.EndRecord(); err != nil {
		log.Fatalf("could not write results: %v", err)
	}
	if len(res.failed) > 0 {
		os.Exit(1)
	}
}

func check(log logrus.FieldLogger, res *results, seed int64, samples int) {
	g := rng.New(rng.WithSeed(seed), rng.WithLogger(log))
	x, err := g.StandardNormal(samples)
	if err != nil {
		log.Fatalf("unexpected error drawing samples: %v", err)
	}
	s := stat.Summarize(x.Values())
	ok := s.Within(0.0, MeanTolerance, StdDevLow, StdDevHigh)
	if !ok {
		log.WithFields(logrus.Fields{"seed": seed, "mean": s.Mean, "stddev": s.StdDev}).Debug("seed failed sanity bounds")
	}
	res.record(seed, ok)
}
