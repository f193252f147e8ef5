package rng

// std is the process-wide generator behind the package level functions.  It is entropy seeded at
// init and replaced in place by Seed.
var std = New()

// Default returns the process-wide generator
func Default() *Generator {
	return std
}

// Seed replaces the process-wide stream with one derived from seed
func Seed(seed int64) {
	std.Reseed(seed)
}

// Uniform draws from the process-wide generator, see Generator.Uniform
func Uniform(shape ...int) (*Array[float64], error) {
	return std.Uniform(shape...)
}

// Normal draws from the process-wide generator, see Generator.Normal
func Normal(mean, stddev float64, size ...int) (*Array[float64], error) {
	return std.Normal(mean, stddev, size...)
}

// StandardNormal draws from the process-wide generator, see Generator.StandardNormal
func StandardNormal(size ...int) (*Array[float64], error) {
	return std.StandardNormal(size...)
}

// Integers draws from the process-wide generator, see Generator.Integers
func Integers(low, high int64, size ...int) (*Array[int64], error) {
	return std.Integers(low, high, size...)
}

// IntegersBelow draws from the process-wide generator, see Generator.IntegersBelow
func IntegersBelow(high int64, size ...int) (*Array[int64], error) {
	return std.IntegersBelow(high, size...)
}

// Choice samples from population using the process-wide generator, see ChoiceFrom
func Choice[T any](population []T, opts ...ChoiceOption) (*Array[T], error) {
	return ChoiceFrom(std, population, opts...)
}
