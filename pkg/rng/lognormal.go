package rng

import (
	"math"
	"math/rand/v2"
)

var _ RNG = &LogNormalRNG{}

// LogNormalRNG generates Log Normal random numbers
type LogNormalRNG struct {
	mean  float64
	stdev float64
	g     *Generator
}

func (r *LogNormalRNG) Rand() float64 {
	var n float64
	r.g.with(func(rr *rand.Rand, _ rand.Source) {
		n = rr.NormFloat64()
	})
	return math.Exp(n*r.stdev + r.mean)
}

// NewLogNormalRNG draws from g, or from the process-wide generator when g is nil.  mean and stdev
// are the parameters of the underlying normal distribution.
func NewLogNormalRNG(g *Generator, mean float64, stdev float64) (*LogNormalRNG, error) {
	if !(stdev >= 0) {
		return nil, invalidArgument("standard deviation must be non-negative, got %v", stdev)
	}
	if g == nil {
		g = std
	}
	return &LogNormalRNG{
		mean:  mean,
		stdev: stdev,
		g:     g,
	}, nil
}
