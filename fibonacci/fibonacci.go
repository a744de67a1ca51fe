// Package fibonacci is a worked example for univariate interpolation:
// recovering the degree-5 polynomial through the first six Fibonacci
// points and using it to predict the seventh.
package fibonacci

import (
	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/univariate"
)

// Points returns the six sample points (1,1), (2,1), (3,2), (4,3), (5,5),
// (6,8): the first six terms of the Fibonacci sequence, indexed starting
// at 1.
func Points() []univariate.Point {
	ys := []uint64{1, 1, 2, 3, 5, 8}
	pts := make([]univariate.Point, len(ys))
	for i, y := range ys {
		pts[i] = univariate.Point{
			X: field.NewFromUint64(uint64(i + 1)),
			Y: field.NewFromUint64(y),
		}
	}
	return pts
}

// Interpolate recovers the unique degree-<=5 polynomial through Points.
func Interpolate() (univariate.Polynomial, error) {
	return univariate.Interpolate(Points())
}

// PredictNext interpolates through Points and evaluates at x=7. Note the
// interpolated polynomial is not the Fibonacci recurrence continued — it is
// whatever degree-5 curve happens to pass through these six points — so the
// predicted value at 7 need not equal the true seventh Fibonacci term (13).
// For this sample it does not: the interpolated polynomial gives 8 at x=7.
func PredictNext() (field.Element, error) {
	p, err := Interpolate()
	if err != nil {
		return field.Element{}, err
	}
	return p.Evaluate(field.NewFromUint64(7)), nil
}
