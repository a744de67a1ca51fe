// Package univariate implements dense coefficient-form univariate
// polynomials over the scalar field: evaluation, interpolation, and the
// arithmetic sum-check's reduce_to_univariate step needs.
package univariate

import (
	"errors"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/fft"
)

// ErrEmptyPolynomial is returned where an operation requires at least one
// coefficient or point.
var ErrEmptyPolynomial = errors.New("univariate: empty polynomial")

// ErrDuplicateAbscissa is returned by Interpolate when two points share an x.
var ErrDuplicateAbscissa = errors.New("univariate: duplicate abscissa")

// Polynomial is an ordered sequence of coefficients c0..cd representing
// sum_i ci*x^i. Trailing zeros are not trimmed; Degree reports the index of
// the last non-zero coefficient, not len(p)-1.
type Polynomial []field.Element

// New copies coeffs into a new Polynomial.
func New(coeffs []field.Element) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial (including the empty sequence).
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate computes p(x) via Horner's method, highest coefficient first.
func (p Polynomial) Evaluate(x field.Element) field.Element {
	var acc field.Element
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p[i])
	}
	return acc
}

// Add returns p+q, padding the shorter operand with zeros.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b field.Element
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Add(&a, &b)
	}
	return out
}

// Sub returns p-q, padding the shorter operand with zeros.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b field.Element
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Sub(&a, &b)
	}
	return out
}

// Mul returns p*q via naive O(d1*d2) convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return Polynomial{}
	}
	out := make(Polynomial, len(p)+len(q)-1)
	var term field.Element
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			term.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return out
}

// ScalarMul returns c*p.
func (p Polynomial) ScalarMul(c field.Element) Polynomial {
	out := make(Polynomial, len(p))
	for i, a := range p {
		out[i].Mul(&a, &c)
	}
	return out
}

// Point is an (x, y) sample used by Interpolate.
type Point struct {
	X, Y field.Element
}

// Interpolate returns the unique polynomial of degree <= len(points)-1
// passing through all given points, via Lagrange basis summation:
//
//	p(X) = sum_i y_i * prod_{j != i} (X - x_j) / (x_i - x_j)
//
// It fails with ErrDuplicateAbscissa if any x repeats and ErrEmptyPolynomial
// if points is empty.
func Interpolate(points []Point) (Polynomial, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyPolynomial
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].X.Equal(&points[j].X) {
				return nil, ErrDuplicateAbscissa
			}
		}
	}

	result := make(Polynomial, n)
	for i := 0; i < n; i++ {
		// basis_i(X) = prod_{j != i} (X - x_j) / (x_i - x_j)
		basis := Polynomial{field.One()}
		var denom field.Element
		denom.SetOne()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			// multiply by (X - x_j)
			negXj := field.Zero()
			negXj.Sub(&negXj, &points[j].X)
			term := Polynomial{negXj, field.One()}
			basis = basis.Mul(term)

			var diff field.Element
			diff.Sub(&points[i].X, &points[j].X)
			denom.Mul(&denom, &diff)
		}
		invDenom, ok := field.Inv(denom)
		if !ok {
			// duplicate abscissas are already rejected above; a zero
			// denominator here would mean a bug in this function.
			panic("univariate: zero denominator during interpolation")
		}
		coeff := field.Zero()
		coeff.Mul(&points[i].Y, &invDenom)
		result = result.Add(basis.ScalarMul(coeff))
	}
	return result, nil
}

// InterpolateOnDomain recovers the polynomial whose evaluations on d's
// multiplicative subgroup are evals, via the fft collaborator's inverse
// transform. This is the FFT fast path for the common case where the
// abscissas form a subgroup rather than arbitrary points; Interpolate
// remains the general-purpose Lagrange path for arbitrary distinct
// abscissas (e.g. the 0,1,2,... points reduce_to_univariate samples at).
func InterpolateOnDomain(d *fft.Domain, evals []field.Element) (Polynomial, error) {
	coeffs, err := d.Interpolate(evals)
	if err != nil {
		return nil, err
	}
	return Polynomial(coeffs), nil
}
