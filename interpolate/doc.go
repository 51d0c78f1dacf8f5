// Package interpolate provides piecewise-linear interpolation of 1-D data.
//
// A Linear interpolant is built once from strictly increasing knots and then
// evaluated any number of times; it is immutable and safe for concurrent use.
// Queries outside [xs[0], xs[n−1]] follow the configured Policy:
//
//	Raise        return ErrOutOfRange (default)
//	Clamp        return the nearest end value
//	Extrapolate  extend the first/last segment
//	Fill         return a fixed value (WithFill)
//
// Interp is the one-shot clamped form.
package interpolate
