package rng

import "fmt"

// InvalidRange is returned when a requested range is empty or inverted, or when more distinct
// samples are requested than the population can provide
type InvalidRange struct {
	Msg string
}

func (e InvalidRange) Error() string {
	return e.Msg
}

// InvalidArgument is returned when a parameter is malformed, such as a negative standard deviation,
// a negative dimension or a weight vector that cannot be normalized
type InvalidArgument struct {
	Msg string
}

func (e InvalidArgument) Error() string {
	return e.Msg
}

func invalidRange(format string, args ...interface{}) error {
	return InvalidRange{Msg: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...interface{}) error {
	return InvalidArgument{Msg: fmt.Sprintf(format, args...)}
}
