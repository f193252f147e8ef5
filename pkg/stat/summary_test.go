package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tt := []struct {
		name   string
		values []float64
		exp    Summary
	}{
		{name: "empty", values: nil, exp: Summary{}},
		{name: "single", values: []float64{4}, exp: Summary{Count: 1, Mean: 4, Min: 4, Max: 4}},
		{name: "several", values: []float64{1.0, 1.0, 1.0, 2.0, 2.0, 2.0}, exp: Summary{Count: 6, Mean: 1.5, StdDev: math.Sqrt(0.3), Min: 1, Max: 2}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize(tc.values)
			assert.Equal(t, tc.exp.Count, s.Count)
			assert.InDelta(t, tc.exp.Mean, s.Mean, 1e-12)
			assert.InDelta(t, tc.exp.StdDev, s.StdDev, 1e-12)
			assert.Equal(t, tc.exp.Min, s.Min)
			assert.Equal(t, tc.exp.Max, s.Max)
		})
	}
}

func TestWithin(t *testing.T) {
	s := Summary{Count: 100, Mean: 0.05, StdDev: 1.1}
	assert.True(t, s.Within(0, 0.1, 0.8, 1.2))
	assert.False(t, s.Within(0, 0.01, 0.8, 1.2))
	assert.False(t, s.Within(0, 0.1, 0.8, 1.0))
	assert.True(t, s.Within(0, 0.1, 0.8, 1.1), "upper bound is inclusive")
	assert.True(t, s.Within(0, 0.1, 1.1, 1.2), "lower bound is inclusive")
	assert.False(t, Summary{}.Within(0, 1, -1, 1))
}

func TestMarshalText(t *testing.T) {
	b, err := Summary{Count: 2, Mean: 1.5, StdDev: 0.5, Min: 1, Max: 2}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "count=2 mean=1.5 stddev=0.5 min=1 max=2", string(b))
}
