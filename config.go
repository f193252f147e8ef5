package seedrand

import (
	"fmt"
	"strconv"
	"strings"
)

// Distribution names a sampling operation of the generator
type Distribution string

const (
	Uniform  Distribution = "uniform"
	Normal   Distribution = "normal"
	Integers Distribution = "integers"
	Choice   Distribution = "choice"

	LogNormal Distribution = "lognormal"
	Poisson   Distribution = "poisson"
)

const (
	FormatText   string = "text"
	FormatLogfmt string = "logfmt"
)

type Config struct {
	Seed       int64
	Seeded     bool
	Dist       Distribution
	Size       []int
	Mean       float64
	Stddev     float64
	Lambda     float64
	Low        int64
	High       int64
	HasHigh    bool
	Population []string
	Weights    []float64
	NoReplace  bool
	Summary    bool
	Format     string
	Verbose    bool
}

type ConfigOption func(c *Config) error

func newConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Dist:   Uniform,
		Stddev: 1.0,
		Lambda: 1.0,
		Format: FormatText,
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}

	switch c.Dist {
	case Uniform, Normal, Integers, LogNormal, Poisson:
		if len(c.Population) > 0 || len(c.Weights) > 0 || c.NoReplace {
			errors = append(errors, fmt.Errorf("population, weights and no-replace only apply to the choice distribution"))
		}
	case Choice:
		if len(c.Population) == 0 {
			errors = append(errors, fmt.Errorf("choice requires a population, use --population a,b,c"))
		}
	default:
		errors = append(errors, fmt.Errorf("unknown distribution %q, expected one of uniform, normal, integers, choice, lognormal, poisson", c.Dist))
	}
	if c.Summary && (c.Dist == Integers || c.Dist == Choice) {
		errors = append(errors, fmt.Errorf("summary is only available for the uniform, normal, lognormal and poisson distributions"))
	}
	if c.Format != FormatText && c.Format != FormatLogfmt {
		errors = append(errors, fmt.Errorf("unknown output format %q, expected text or logfmt", c.Format))
	}
	return c, errors
}

// Seed makes the draw reproducible
func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to integer: %s", seed)
		}
		c.Seed = s
		c.Seeded = true
		return nil
	}
}

func Dist(dist string) ConfigOption {
	return func(c *Config) error {
		c.Dist = Distribution(strings.ToLower(dist))
		return nil
	}
}

// Size sets the output dimensions as a comma separated list, e.g. 3,2
func Size(size string) ConfigOption {
	return func(c *Config) error {
		dims, err := splitInts(size)
		if err != nil {
			return fmt.Errorf("invalid size %s: %v", size, err)
		}
		for _, d := range dims {
			if d < 0 {
				return fmt.Errorf("invalid size %s: dimensions must be non-negative", size)
			}
		}
		c.Size = dims
		return nil
	}
}

func Mean(mean string) ConfigOption {
	return func(c *Config) error {
		m, err := strconv.ParseFloat(mean, 64)
		if err != nil {
			return fmt.Errorf("could not convert mean to float: %s", mean)
		}
		c.Mean = m
		return nil
	}
}

func Stddev(stddev string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseFloat(stddev, 64)
		if err != nil {
			return fmt.Errorf("could not convert stddev to float: %s", stddev)
		}
		c.Stddev = s
		return nil
	}
}

// Lambda sets the rate of the poisson distribution
func Lambda(lambda string) ConfigOption {
	return func(c *Config) error {
		l, err := strconv.ParseFloat(lambda, 64)
		if err != nil {
			return fmt.Errorf("could not convert lambda to float: %s", lambda)
		}
		c.Lambda = l
		return nil
	}
}

func Low(low string) ConfigOption {
	return func(c *Config) error {
		l, err := strconv.ParseInt(low, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert low to integer: %s", low)
		}
		c.Low = l
		return nil
	}
}

// High sets the exclusive upper bound for integers.  When it is not set, low is the exclusive
// upper bound and zero the lower bound.
func High(high string) ConfigOption {
	return func(c *Config) error {
		h, err := strconv.ParseInt(high, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert high to integer: %s", high)
		}
		c.High = h
		c.HasHigh = true
		return nil
	}
}

// Population appends comma separated elements to the choice population
func Population(population string) ConfigOption {
	return func(c *Config) error {
		for _, p := range strings.Split(population, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Population = append(c.Population, p)
			}
		}
		return nil
	}
}

// Weights appends comma separated choice weights
func Weights(weights string) ConfigOption {
	return func(c *Config) error {
		for _, w := range strings.Split(weights, ",") {
			f, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
			if err != nil {
				return fmt.Errorf("could not convert weight to float: %s", w)
			}
			c.Weights = append(c.Weights, f)
		}
		return nil
	}
}

func NoReplace() ConfigOption {
	return func(c *Config) error {
		c.NoReplace = true
		return nil
	}
}

func Summary() ConfigOption {
	return func(c *Config) error {
		c.Summary = true
		return nil
	}
}

func Format(format string) ConfigOption {
	return func(c *Config) error {
		c.Format = strings.ToLower(format)
		return nil
	}
}

func Verbose() ConfigOption {
	return func(c *Config) error {
		c.Verbose = true
		return nil
	}
}

func splitInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s is not an integer", f)
		}
		out = append(out, i)
	}
	return out, nil
}
