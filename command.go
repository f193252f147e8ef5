package seedrand

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-logfmt/logfmt"
	"github.com/sirupsen/logrus"

	"github.com/BTBurke/seedrand/pkg/rng"
	"github.com/BTBurke/seedrand/pkg/stat"
)

// Command draws samples described by a Config and writes them out
type Command struct {
	Config Config

	gen *rng.Generator
	log *logrus.Logger
}

// New returns a command configured by options.  All configuration errors are returned together.
func New(options ...ConfigOption) (*Command, []error) {
	config, errs := newConfig(options...)
	if len(errs) > 0 {
		return nil, errs
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if config.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := []rng.Option{rng.WithLogger(log)}
	if config.Seeded {
		opts = append(opts, rng.WithSeed(config.Seed))
	}
	gen := rng.New(opts...)
	log.WithField("seed", gen.Seed()).Debug("using seed")

	return &Command{
		Config: config,
		gen:    gen,
		log:    log,
	}, nil
}

// Exec performs the draw and writes the result to w
func (c *Command) Exec(w io.Writer) error {
	c.log.WithFields(logrus.Fields{
		"dist": c.Config.Dist,
		"size": rng.Shape(c.Config.Size).String(),
	}).Debug("drawing samples")

	bw := bufio.NewWriter(w)
	var err error
	switch c.Config.Dist {
	case Uniform:
		var a *rng.Array[float64]
		if a, err = c.gen.Uniform(c.Config.Size...); err == nil {
			err = c.writeFloats(bw, a)
		}
	case Normal:
		var a *rng.Array[float64]
		if a, err = c.gen.Normal(c.Config.Mean, c.Config.Stddev, c.Config.Size...); err == nil {
			err = c.writeFloats(bw, a)
		}
	case LogNormal:
		var r *rng.LogNormalRNG
		if r, err = rng.NewLogNormalRNG(c.gen, c.Config.Mean, c.Config.Stddev); err == nil {
			err = c.sample(bw, r)
		}
	case Poisson:
		var r *rng.PoissonRNG
		if r, err = rng.NewPoissonRNG(c.gen, c.Config.Lambda); err == nil {
			err = c.sample(bw, r)
		}
	case Integers:
		var a *rng.Array[int64]
		if c.Config.HasHigh {
			a, err = c.gen.Integers(c.Config.Low, c.Config.High, c.Config.Size...)
		} else {
			a, err = c.gen.IntegersBelow(c.Config.Low, c.Config.Size...)
		}
		if err == nil {
			err = c.writeValues(bw, intStrings(a.Values()))
		}
	case Choice:
		var a *rng.Array[string]
		if a, err = rng.ChoiceFrom(c.gen, c.Config.Population, c.choiceOptions()...); err == nil {
			err = c.writeValues(bw, a.Values())
		}
	default:
		err = fmt.Errorf("unknown distribution %q", c.Config.Dist)
	}
	if err != nil {
		return fmt.Errorf("%s draw failed: %w", c.Config.Dist, err)
	}
	return bw.Flush()
}

func (c *Command) sample(w io.Writer, r rng.RNG) error {
	a, err := rng.Sample(r, c.Config.Size...)
	if err != nil {
		return err
	}
	return c.writeFloats(w, a)
}

func (c *Command) choiceOptions() []rng.ChoiceOption {
	var opts []rng.ChoiceOption
	if len(c.Config.Size) > 0 {
		opts = append(opts, rng.Size(c.Config.Size...))
	}
	if c.Config.NoReplace {
		opts = append(opts, rng.WithoutReplacement())
	}
	if len(c.Config.Weights) > 0 {
		opts = append(opts, rng.Weights(c.Config.Weights))
	}
	return opts
}

func (c *Command) writeFloats(w io.Writer, a *rng.Array[float64]) error {
	values := a.Values()
	if c.Config.Summary {
		kv := append([]interface{}{"dist", string(c.Config.Dist), "shape", a.Shape().String()}, stat.Summarize(values).Keyvals()...)
		e := logfmt.NewEncoder(w)
		if err := e.EncodeKeyvals(kv...); err != nil {
			return err
		}
		return e.EndRecord()
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return c.writeValues(w, out)
}

// writeValues writes one value per line in text format, or one index=i value=v record per value
// in logfmt format
func (c *Command) writeValues(w io.Writer, values []string) error {
	if c.Config.Format == FormatLogfmt {
		e := logfmt.NewEncoder(w)
		for i, v := range values {
			if err := e.EncodeKeyvals("index", i, "value", v); err != nil {
				return err
			}
			if err := e.EndRecord(); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func intStrings(values []int64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatInt(v, 10)
	}
	return out
}
