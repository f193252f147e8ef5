package rng

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestChoiceBasicAndWithoutReplacement(t *testing.T) {
	g := New(WithSeed(999))
	a := arange(100)

	x, err := ChoiceFrom(g, a, Size(20))
	require.NoError(t, err)
	assert.Equal(t, Shape{20}, x.Shape())
	for _, v := range x.Values() {
		assert.True(t, v >= 0 && v < 100)
	}

	y, err := ChoiceFrom(g, a, Size(20), WithoutReplacement())
	require.NoError(t, err)
	assert.Equal(t, Shape{20}, y.Shape())
	seen := map[int]bool{}
	for _, v := range y.Values() {
		assert.True(t, v >= 0 && v < 100)
		seen[v] = true
	}
	assert.Len(t, seen, 20, "samples without replacement must be distinct")
}

func TestChoiceScalar(t *testing.T) {
	g := New(WithSeed(1))
	x, err := ChoiceFrom(g, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, Shape{}, x.Shape())
	assert.Contains(t, []string{"a", "b", "c"}, x.Scalar())
}

func TestChoiceMultiDimensional(t *testing.T) {
	g := New(WithSeed(1))
	x, err := ChoiceFrom(g, arange(10), Size(2, 5), WithoutReplacement())
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 5}, x.Shape())
	assert.ElementsMatch(t, arange(10), x.Values(), "taking the whole population is a permutation")
}

func TestChoiceDistinctByPosition(t *testing.T) {
	g := New(WithSeed(4))
	x, err := ChoiceFrom(g, []string{"a", "a", "b"}, Size(3), WithoutReplacement())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "a", "b"}, x.Values())
}

func TestChoiceReproducible(t *testing.T) {
	pop := []string{"red", "green", "blue", "cyan", "magenta"}
	draw := func() []string {
		g := New(WithSeed(31))
		x, err := ChoiceFrom(g, pop, Size(3), WithoutReplacement(), Weights([]float64{1, 2, 3, 4, 5}))
		require.NoError(t, err)
		return x.Values()
	}
	assert.Equal(t, draw(), draw())
}

func TestChoiceWeighted(t *testing.T) {
	g := New(WithSeed(8))
	x, err := ChoiceFrom(g, []string{"a", "b"}, Size(20000), Weights([]float64{1, 3}))
	require.NoError(t, err)
	b := 0
	for _, v := range x.Values() {
		if v == "b" {
			b++
		}
	}
	assert.InDelta(t, 0.75, float64(b)/20000.0, 0.02)
}

func TestChoiceZeroWeightNeverDrawn(t *testing.T) {
	g := New(WithSeed(8))
	x, err := ChoiceFrom(g, []int{10, 20, 30}, Size(500), Weights([]float64{0, 1, 0}))
	require.NoError(t, err)
	for _, v := range x.Values() {
		assert.Equal(t, 20, v)
	}
}

func TestChoiceWeightedWithoutReplacement(t *testing.T) {
	g := New(WithSeed(8))
	x, err := ChoiceFrom(g, arange(4), Size(4), WithoutReplacement(), Weights([]float64{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.ElementsMatch(t, arange(4), x.Values())
}

func TestChoiceEmptySize(t *testing.T) {
	g := New(WithSeed(8))
	x, err := ChoiceFrom(g, []int{}, Size(0), WithoutReplacement())
	require.NoError(t, err)
	assert.Equal(t, 0, x.Size())
}

func TestChoiceErrors(t *testing.T) {
	g := New(WithSeed(1))
	pop := arange(5)
	tt := []struct {
		name      string
		pop       []int
		opts      []ChoiceOption
		wantRange bool
	}{
		{name: "too many without replacement", pop: pop, opts: []ChoiceOption{Size(6), WithoutReplacement()}, wantRange: true},
		{name: "empty population", pop: []int{}, opts: []ChoiceOption{Size(1)}, wantRange: true},
		{name: "empty population scalar", pop: nil, wantRange: true},
		{name: "too few positive weights", pop: pop, opts: []ChoiceOption{Size(3), WithoutReplacement(), Weights([]float64{1, 1, 0, 0, 0})}, wantRange: true},
		{name: "weights length mismatch", pop: pop, opts: []ChoiceOption{Weights([]float64{1, 2})}},
		{name: "negative weight", pop: pop, opts: []ChoiceOption{Weights([]float64{1, -1, 1, 1, 1})}},
		{name: "zero sum", pop: pop, opts: []ChoiceOption{Weights([]float64{0, 0, 0, 0, 0})}},
		{name: "nan weight", pop: pop, opts: []ChoiceOption{Weights([]float64{1, math.NaN(), 1, 1, 1})}},
		{name: "infinite weight", pop: pop, opts: []ChoiceOption{Weights([]float64{1, math.Inf(1), 1, 1, 1})}},
		{name: "nil weights", pop: pop, opts: []ChoiceOption{Weights(nil)}},
		{name: "negative size", pop: pop, opts: []ChoiceOption{Size(-2)}},
		{name: "size wrapping to zero", pop: []int{1, 2, 3}, opts: []ChoiceOption{Size(1<<32, 1<<32), WithoutReplacement()}},
		{name: "size wrapping negative", pop: pop, opts: []ChoiceOption{Size(3, 1<<62)}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			x, err := ChoiceFrom(g, tc.pop, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, x, "no partial result on error")
			if tc.wantRange {
				assert.IsType(t, InvalidRange{}, err)
			} else {
				assert.IsType(t, InvalidArgument{}, err)
			}
		})
	}
}

func TestPickNFromMShuffle(t *testing.T) {
	g := New(WithSeed(2))
	for _, size := range []int{1, 2, 10, 257} {
		dst := make([]int, size)
		g.with(func(r *rand.Rand, _ rand.Source) {
			pickNFromM(dst, size, r)
		})
		assert.ElementsMatch(t, arange(size), dst, "picking all of [0, %d) should be a shuffle", size)
	}
}

func TestPickNFromMSmall(t *testing.T) {
	g := New(WithSeed(2))
	for _, tc := range []struct{ n, m int }{{1, 1000}, {5, 10}, {30, 1 << 30}} {
		dst := make([]int, tc.n)
		g.with(func(r *rand.Rand, _ rand.Source) {
			pickNFromM(dst, tc.m, r)
		})
		seen := map[int]bool{}
		for _, v := range dst {
			assert.True(t, v >= 0 && v < tc.m, "element %d out of [0, %d)", v, tc.m)
			assert.False(t, seen[v], "element %d picked twice", v)
			seen[v] = true
		}
	}
}

func TestPickNFromMUniform(t *testing.T) {
	g := New(WithSeed(6))
	counts := make([]int, 10)
	const trials = 20000
	dst := make([]int, 3)
	for i := 0; i < trials; i++ {
		g.with(func(r *rand.Rand, _ rand.Source) {
			pickNFromM(dst, 10, r)
		})
		for _, v := range dst {
			counts[v]++
		}
	}
	for v, c := range counts {
		assert.InDelta(t, 0.3, float64(c)/trials, 0.02, "value %d selected with skewed frequency", v)
	}
}
