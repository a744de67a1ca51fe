// Package shamir implements Shamir secret sharing over the scalar field,
// reworked from the classic GF(2^8) byte-oriented scheme into a
// single-field-element scheme built directly on
// univariate.Interpolate: the secret is the constant term of a random
// degree-(threshold-1) polynomial, shares are (x, p(x)) samples at nonzero
// x, and any threshold of them recover p(0) via Lagrange interpolation.
package shamir

import (
	"errors"
	"io"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/univariate"
)

// ErrThresholdTooLow is returned when threshold is below 2.
var ErrThresholdTooLow = errors.New("shamir: threshold must be at least 2")

// ErrPartsBelowThreshold is returned when fewer shares are requested than
// the threshold needed to reconstruct.
var ErrPartsBelowThreshold = errors.New("shamir: parts cannot be less than threshold")

// ErrNotEnoughShares is returned by Combine when fewer than 2 shares are given.
var ErrNotEnoughShares = errors.New("shamir: at least two shares are required")

// ErrDuplicateShare is returned by Combine when two shares share an x coordinate.
var ErrDuplicateShare = errors.New("shamir: duplicate share x-coordinate")

// Share is one (x, p(x)) sample of the sharing polynomial.
type Share struct {
	X, Y field.Element
}

// Split builds parts shares of secret under a degree-(threshold-1) random
// polynomial whose constant term is secret, evaluated at x = 1..parts (x=0
// is reserved for the secret itself, matching the reference scheme's "add 1
// to the x coordinate" rule).
func Split(secret field.Element, parts, threshold int, r io.Reader) ([]Share, error) {
	if threshold < 2 {
		return nil, ErrThresholdTooLow
	}
	if parts < threshold {
		return nil, ErrPartsBelowThreshold
	}

	coeffs := make(univariate.Polynomial, threshold)
	coeffs[0] = secret
	for i := 1; i < threshold; i++ {
		c, err := field.Random(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	shares := make([]Share, parts)
	for i := 0; i < parts; i++ {
		x := field.NewFromUint64(uint64(i + 1))
		shares[i] = Share{X: x, Y: coeffs.Evaluate(x)}
	}
	return shares, nil
}

// Combine reconstructs the secret from threshold-or-more shares via
// Lagrange interpolation at x = 0.
func Combine(shares []Share) (field.Element, error) {
	if len(shares) < 2 {
		return field.Element{}, ErrNotEnoughShares
	}
	seen := make(map[field.Element]bool, len(shares))
	points := make([]univariate.Point, len(shares))
	for i, s := range shares {
		if seen[s.X] {
			return field.Element{}, ErrDuplicateShare
		}
		seen[s.X] = true
		points[i] = univariate.Point{X: s.X, Y: s.Y}
	}

	p, err := univariate.Interpolate(points)
	if err != nil {
		return field.Element{}, err
	}
	return p.Evaluate(field.Zero()), nil
}
