package rng

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is an ordered list of dimension sizes.  The empty shape describes a scalar.
type Shape []int

// Size returns the number of elements described by the shape.  The empty shape has one element.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// String renders the shape as 3x2x1, or "scalar" for the empty shape
func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	dims := make([]string, len(s))
	for i, d := range s {
		dims[i] = strconv.Itoa(d)
	}
	return strings.Join(dims, "x")
}

// validate checks that every dimension is non-negative and that the element count fits in an int.
// Size may only be trusted on a validated shape.
func (s Shape) validate() error {
	empty := false
	for i, d := range s {
		if d < 0 {
			return invalidArgument("dimension %d of shape %v is negative", i, []int(s))
		}
		if d == 0 {
			empty = true
		}
	}
	if empty {
		return nil
	}
	n := 1
	for _, d := range s {
		if n > math.MaxInt/d {
			return invalidArgument("shape %v has more elements than can be allocated", []int(s))
		}
		n *= d
	}
	return nil
}

func (s Shape) copy() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Array is an immutable n-dimensional result of a sampling call.  Elements are stored in row-major order.
type Array[T any] struct {
	shape Shape
	data  []T
}

func newArray[T any](shape Shape) *Array[T] {
	return &Array[T]{
		shape: shape.copy(),
		data:  make([]T, shape.Size()),
	}
}

// Shape returns a copy of the dimensions of the array
func (a *Array[T]) Shape() Shape {
	return a.shape.copy()
}

// Size returns the total number of elements
func (a *Array[T]) Size() int {
	return len(a.data)
}

// Values returns a copy of the elements in row-major order
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Scalar returns the first element.  It is intended for arrays drawn with the empty shape and
// returns the zero value for an empty array.
func (a *Array[T]) Scalar() T {
	var zero T
	if len(a.data) == 0 {
		return zero
	}
	return a.data[0]
}

// At returns the element at the given multi-dimensional index
func (a *Array[T]) At(index ...int) (T, error) {
	var zero T
	if len(index) != len(a.shape) {
		return zero, fmt.Errorf("index %v has %d dimensions, array has %d", index, len(index), len(a.shape))
	}
	offset := 0
	for i, ix := range index {
		if ix < 0 || ix >= a.shape[i] {
			return zero, fmt.Errorf("index %v out of bounds for shape %s", index, a.shape)
		}
		offset = offset*a.shape[i] + ix
	}
	return a.data[offset], nil
}
