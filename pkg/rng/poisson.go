package rng

import (
	"math"
	"math/rand/v2"
)

var _ RNG = &PoissonRNG{}

// PoissonRNG generates Poisson distributed numbers using Knuth's algorithm
type PoissonRNG struct {
	lambda float64
	g      *Generator
}

func (r *PoissonRNG) Rand() float64 {
	// Knuth's algorithm
	L := math.Exp(-r.lambda)
	var k int64 = 0
	var p float64 = 1.0

	r.g.with(func(rr *rand.Rand, _ rand.Source) {
		for p > L {
			k++
			p = p * rr.Float64()
		}
	})
	return float64(k - 1)
}

// NewPoissonRNG draws from g, or from the process-wide generator when g is nil.  Knuth's algorithm
// is linear in lambda and underflows for very large lambda, so it is intended for small rates.
func NewPoissonRNG(g *Generator, lambda float64) (*PoissonRNG, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return nil, invalidArgument("poisson rate must be positive and finite, got %v", lambda)
	}
	if g == nil {
		g = std
	}
	return &PoissonRNG{
		lambda: lambda,
		g:      g,
	}, nil
}
