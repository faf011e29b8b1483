// Package interp provides sub-sample peak interpolation primitives.
//
// [Parabolic] fits a quadratic through three equally spaced samples around a
// discrete extremum and returns the fractional offset of its vertex. It is
// used by measure/pitch to refine an autocorrelation peak lag.
package interp
