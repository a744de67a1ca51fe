// Package fft is a standalone collaborator wrapping gnark-crypto's
// per-curve FFT domain (github.com/consensys/gnark-crypto/ecc/bn254/fr/fft):
// gnark-crypto already knows the scalar field's 2-adicity and picks the
// canonical primitive root of unity for a requested power-of-two size, so
// this package only adds the natural-order (not bit-reversed) in/out
// convention univariate.InterpolateOnDomain and kzg.CommitEvaluations
// expect. It is not on the soundness-critical path of sum-check, GKR or
// KZG.
package fft

import (
	"errors"

	gfft "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/giuliop/gkrzk/field"
)

// ErrNotPowerOfTwo is returned when a domain size is not a power of two.
var ErrNotPowerOfTwo = errors.New("fft: size must be a power of two")

// ErrSizeMismatch is returned when a vector's length does not match the
// domain's cardinality.
var ErrSizeMismatch = errors.New("fft: vector length does not match domain size")

// Domain is a multiplicative subgroup of the scalar field of a fixed
// power-of-two size, wrapping gnark-crypto's generated Domain.
type Domain struct {
	inner *gfft.Domain
}

// NewDomain returns a Domain able to transform vectors of exactly size
// field elements. size must be a power of two; the subgroup generator is
// gnark-crypto's own canonical root of unity for that size, not a
// caller-supplied value.
func NewDomain(size int) (*Domain, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	return &Domain{inner: gfft.NewDomain(uint64(size))}, nil
}

// Size returns the domain's cardinality.
func (d *Domain) Size() int {
	return int(d.inner.Cardinality)
}

// Evaluate returns coeffs' values at each of the domain's size-th roots of
// unity, in natural (not bit-reversed) order. len(coeffs) must equal
// d.Size().
func (d *Domain) Evaluate(coeffs []field.Element) ([]field.Element, error) {
	if len(coeffs) != d.Size() {
		return nil, ErrSizeMismatch
	}
	work := make([]field.Element, len(coeffs))
	copy(work, coeffs)
	gfft.BitReverse(work)
	d.inner.FFT(work, gfft.DIT)
	return work, nil
}

// Interpolate recovers the coefficients of the unique polynomial of degree
// < d.Size() whose values on the domain are evals, in natural order.
// len(evals) must equal d.Size().
func (d *Domain) Interpolate(evals []field.Element) ([]field.Element, error) {
	if len(evals) != d.Size() {
		return nil, ErrSizeMismatch
	}
	work := make([]field.Element, len(evals))
	copy(work, evals)
	d.inner.FFTInverse(work, gfft.DIF)
	gfft.BitReverse(work)
	return work, nil
}
