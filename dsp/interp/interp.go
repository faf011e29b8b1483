package interp

import "math"

// DefaultEpsilon is the relative curvature threshold below which
// [Parabolic] treats the three samples as collinear.
const DefaultEpsilon = 1e-12

// Parabolic returns the vertex offset, relative to the centre sample, of the
// parabola through (-1, y1), (0, y2), (1, y3):
//
//	d = (y3 - y1) / (2 * (2*y2 - y1 - y3))
//
// ok is false when the curvature 2*y2 - y1 - y3 is zero or not larger than
// eps times the largest sample magnitude; d is then 0. A non-positive eps
// selects [DefaultEpsilon].
func Parabolic(y1, y2, y3, eps float64) (d float64, ok bool) {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	curvature := 2*y2 - y1 - y3
	scale := math.Max(math.Abs(y2), math.Max(math.Abs(y1), math.Abs(y3)))
	if curvature == 0 || math.Abs(curvature) <= eps*scale {
		return 0, false
	}
	if math.IsNaN(curvature) || math.IsInf(curvature, 0) {
		return 0, false
	}

	return (y3 - y1) / (2 * curvature), true
}

// ParabolicPeak returns the vertex offset and the interpolated value at the
// vertex. When the samples are degenerate it returns (0, y2, false).
func ParabolicPeak(y1, y2, y3, eps float64) (d, value float64, ok bool) {
	d, ok = Parabolic(y1, y2, y3, eps)
	if !ok {
		return 0, y2, false
	}
	return d, y2 - 0.25*(y1-y3)*d, true
}
