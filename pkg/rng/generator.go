// Package rng provides a seedable pseudo-random source with uniform, normal, integer and weighted
// choice sampling.  Each Generator owns its stream exclusively, so its output never depends on
// math/rand or any other random state in the process.
//
// For reproducible output, construct a Generator with WithSeed or call Reseed before drawing.
// Reseed replaces the whole stream: every draw that follows comes from the new seed with no
// carry-over from the previous instance.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// pcgStream is the fixed PCG increment.  The seed alone determines the sequence.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// Generator is a seedable random source.  It is safe for concurrent use; every call holds the
// generator for its whole duration so a single call never mixes two streams.
type Generator struct {
	mu   sync.Mutex
	seed int64
	src  *rand.PCG
	r    *rand.Rand
	log  logrus.FieldLogger
}

type options struct {
	seed   int64
	seeded bool
	log    logrus.FieldLogger
}

// Option configures a new Generator
type Option func(o *options)

// WithSeed makes the generator deterministic
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sets the logger used to report reseeds.  Defaults to the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New returns a Generator.  Without WithSeed the seed is drawn from the system entropy source.
func New(opts ...Option) *Generator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = entropySeed()
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}
	g := &Generator{log: o.log}
	g.reset(o.seed)
	return g
}

// Reseed replaces the generator's stream with a new one derived from seed.  Any integer is valid.
func (g *Generator) Reseed(seed int64) {
	g.mu.Lock()
	g.reset(seed)
	g.mu.Unlock()
	g.log.WithField("seed", seed).Debug("rng: reseeded generator")
}

// Seed returns the seed of the current stream.  For an entropy seeded generator this is the value
// that was drawn at construction, which can be passed to WithSeed to replay the run.
func (g *Generator) Seed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed
}

func (g *Generator) reset(seed int64) {
	g.seed = seed
	g.src = rand.NewPCG(uint64(seed), pcgStream)
	g.r = rand.New(g.src)
}

// with runs f while holding the generator
func (g *Generator) with(f func(r *rand.Rand, src rand.Source)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f(g.r, g.src)
}

// Uniform draws samples uniformly distributed over [0, 1).  No dimensions yields a scalar.
func (g *Generator) Uniform(shape ...int) (*Array[float64], error) {
	s := Shape(shape)
	if err := s.validate(); err != nil {
		return nil, err
	}
	out := newArray[float64](s)
	g.with(func(r *rand.Rand, _ rand.Source) {
		for i := range out.data {
			out.data[i] = r.Float64()
		}
	})
	return out, nil
}

// Normal draws samples from a Gaussian distribution with the given mean and standard deviation.
// A negative or NaN stddev fails with InvalidArgument.  No size yields a scalar.
func (g *Generator) Normal(mean, stddev float64, size ...int) (*Array[float64], error) {
	if !(stddev >= 0) {
		return nil, invalidArgument("standard deviation must be non-negative, got %v", stddev)
	}
	s := Shape(size)
	if err := s.validate(); err != nil {
		return nil, err
	}
	out := newArray[float64](s)
	g.with(func(r *rand.Rand, _ rand.Source) {
		for i := range out.data {
			out.data[i] = r.NormFloat64()*stddev + mean
		}
	})
	return out, nil
}

// StandardNormal is Normal with mean 0 and standard deviation 1
func (g *Generator) StandardNormal(size ...int) (*Array[float64], error) {
	return g.Normal(0.0, 1.0, size...)
}

// Integers draws integers uniformly distributed over [low, high).  Fails with InvalidRange unless
// low < high.
func (g *Generator) Integers(low, high int64, size ...int) (*Array[int64], error) {
	if low >= high {
		return nil, invalidRange("low (%d) must be less than high (%d)", low, high)
	}
	s := Shape(size)
	if err := s.validate(); err != nil {
		return nil, err
	}
	// high-low may exceed math.MaxInt64 but always fits in a uint64
	span := uint64(high - low)
	out := newArray[int64](s)
	g.with(func(r *rand.Rand, _ rand.Source) {
		for i := range out.data {
			out.data[i] = low + int64(r.Uint64N(span))
		}
	})
	return out, nil
}

// IntegersBelow draws integers uniformly distributed over [0, high).  Fails with InvalidRange
// unless high > 0.
func (g *Generator) IntegersBelow(high int64, size ...int) (*Array[int64], error) {
	if high <= 0 {
		return nil, invalidRange("high (%d) must be positive when low is omitted", high)
	}
	return g.Integers(0, high, size...)
}

// entropySeed draws a seed from crypto/rand, falling back to the clock if the system source fails
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
