package rng

// RNG is a random number generator for a single distribution
type RNG interface {
	Rand() float64
}

// Sample fills an array of the given shape with draws from r.  Each draw holds the underlying
// generator separately, so concurrent users of the same Generator may interleave with the fill.
func Sample(r RNG, shape ...int) (*Array[float64], error) {
	s := Shape(shape)
	if err := s.validate(); err != nil {
		return nil, err
	}
	out := newArray[float64](s)
	for i := range out.data {
		out.data[i] = r.Rand()
	}
	return out, nil
}
