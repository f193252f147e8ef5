package rng

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

type choiceOptions struct {
	size       Shape
	replace    bool
	weights    []float64
	hasWeights bool
}

// ChoiceOption configures a choice call
type ChoiceOption func(o *choiceOptions)

// Size sets the shape of the result.  Without it a single element is drawn.
func Size(dims ...int) ChoiceOption {
	return func(o *choiceOptions) {
		o.size = Shape(dims)
	}
}

// WithoutReplacement draws distinct positions of the population
func WithoutReplacement() ChoiceOption {
	return func(o *choiceOptions) {
		o.replace = false
	}
}

// Weights sets per-element sampling weights.  They need not sum to one but must be non-negative,
// finite and have a positive sum.  The slice must have the same length as the population.
func Weights(w []float64) ChoiceOption {
	return func(o *choiceOptions) {
		o.weights = w
		o.hasWeights = true
	}
}

// ChoiceFrom samples elements of population using g.  Sampling is uniform unless Weights is given
// and with replacement unless WithoutReplacement is given.  Without replacement the returned
// elements come from distinct positions of the population, even when the population holds
// duplicate values.
func ChoiceFrom[T any](g *Generator, population []T, opts ...ChoiceOption) (*Array[T], error) {
	o := choiceOptions{replace: true}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.size.validate(); err != nil {
		return nil, err
	}

	n, k := len(population), o.size.Size()
	positive := n
	if o.hasWeights {
		var err error
		if positive, err = validateWeights(o.weights, n); err != nil {
			return nil, err
		}
	}
	switch {
	case k > 0 && n == 0:
		return nil, invalidRange("cannot take %d samples from an empty population", k)
	case !o.replace && k > n:
		return nil, invalidRange("cannot take %d samples without replacement from a population of %d", k, n)
	case !o.replace && k > positive:
		return nil, invalidRange("cannot take %d samples without replacement with only %d non-zero weights", k, positive)
	}

	idx := make([]int, k)
	g.with(func(r *rand.Rand, src rand.Source) {
		switch {
		case o.hasWeights:
			pickWeighted(idx, o.weights, o.replace, src)
		case o.replace:
			for i := range idx {
				idx[i] = r.IntN(n)
			}
		default:
			pickNFromM(idx, n, r)
		}
	})

	out := newArray[T](o.size)
	for i, ix := range idx {
		out.data[i] = population[ix]
	}
	return out, nil
}

// validateWeights checks w against a population of n elements and returns the number of
// positive weights
func validateWeights(w []float64, n int) (int, error) {
	if len(w) != n {
		return 0, invalidArgument("weights has %d entries, population has %d", len(w), n)
	}
	sum := 0.0
	positive := 0
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, invalidArgument("weight %d must be finite and non-negative, got %v", i, v)
		}
		if v > 0 {
			positive++
		}
		sum += v
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return 0, invalidArgument("weights must have a positive finite sum, got %v", sum)
	}
	return positive, nil
}

// pickWeighted fills dst with indexes drawn with probability proportional to w
func pickWeighted(dst []int, w []float64, replace bool, src rand.Source) {
	ws := sampleuv.NewWeighted(w, src)
	for i := range dst {
		ix, _ := ws.Take()
		dst[i] = ix
		if replace {
			ws.Reweight(ix, w[ix])
		}
	}
}

// pickNFromM fills dst with len(dst) distinct values from [0, m).  This is a partial Fisher-Yates
// shuffle that only records displaced positions, so it takes O(len(dst)) memory rather than O(m).
//
// Pre-condition: len(dst) <= m
func pickNFromM(dst []int, m int, r *rand.Rand) {
	displaced := make(map[int]int, len(dst))
	at := func(i int) int {
		if v, ok := displaced[i]; ok {
			return v
		}
		return i
	}
	for i := range dst {
		j := i + r.IntN(m-i)
		dst[i] = at(j)
		displaced[j] = at(i)
	}
}
