// Package stat summarizes drawn samples and checks them against the basic sanity bounds expected
// of a distribution.  It is not a statistical test suite.
package stat

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-logfmt/logfmt"
	"gonum.org/v1/gonum/floats"
	gonumstat "gonum.org/v1/gonum/stat"
)

// Summary holds the moments and extremes of a set of observations
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary of values.  StdDev is the sample standard deviation and is zero
// when fewer than two values are given.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	switch len(values) {
	case 1:
		s.Mean = values[0]
	default:
		s.Mean, s.StdDev = gonumstat.MeanStdDev(values, nil)
	}
	return s
}

// Within reports whether the sample mean lies strictly within meanTol of mean and the sample
// standard deviation lies in the closed interval [sdLow, sdHigh]
func (s Summary) Within(mean, meanTol, sdLow, sdHigh float64) bool {
	if s.Count == 0 {
		return false
	}
	return math.Abs(s.Mean-mean) < meanTol && s.StdDev >= sdLow && s.StdDev <= sdHigh
}

// Keyvals returns the summary as alternating keys and values in a fixed order
func (s Summary) Keyvals() []interface{} {
	return []interface{}{
		"count", s.Count,
		"mean", s.Mean,
		"stddev", s.StdDev,
		"min", s.Min,
		"max", s.Max,
	}
}

// MarshalText encodes the summary as a logfmt record, e.g. count=3 mean=2 stddev=1 min=1 max=3
func (s Summary) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	e := logfmt.NewEncoder(&b)
	if err := e.EncodeKeyvals(s.Keyvals()...); err != nil {
		return nil, fmt.Errorf("failed to encode summary: %v", err)
	}
	return b.Bytes(), nil
}
