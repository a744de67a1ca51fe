// Package composed implements the composed-polynomial shapes the GKR
// sum-check instances reduce over: a product of multilinear extensions at a
// shared point, and a sum of such products. Both satisfy the same
// capability sum-check needs: partial evaluation, evaluation, and degree,
// so the round polynomial can be recovered by sampling at 0, 1, ..., degree
// and interpolating.
package composed

import (
	"errors"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/multilinear"
)

// ErrNoFactors is returned by NewProduct when given zero factors.
var ErrNoFactors = errors.New("composed: product requires at least one factor")

// ErrNoTerms is returned by NewSum when given zero terms.
var ErrNoTerms = errors.New("composed: sum requires at least one term")

// ErrArityMismatch is returned when factors/terms disagree on NVars.
var ErrArityMismatch = errors.New("composed: arity mismatch")

// Poly is the capability every composed shape exposes to sum-check: the
// number of remaining Boolean variables, evaluation at a full point, partial
// evaluation fixing one variable, and the total degree in any single
// variable (used to bound how many samples reduce_to_univariate needs).
type Poly interface {
	NVars() int
	Degree() int
	Evaluate(r []field.Element) (field.Element, error)
	PartialEvaluate(varIndex int, r field.Element) (Poly, error)
}

// ProductPoly is the pointwise product of one or more multilinear
// extensions sharing the same arity, e.g. the GKR layer-reduction term
// f(x) = addMLE(x)*(L(x)+L'(x)) + mulMLE(x)*L(x)*L'(x) is built from
// ProductPoly terms combined by SumPoly.
type ProductPoly struct {
	factors []*multilinear.Poly
}

// NewProduct builds a ProductPoly from factors, which must all share NVars.
func NewProduct(factors []*multilinear.Poly) (*ProductPoly, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	n := factors[0].NVars()
	for _, f := range factors[1:] {
		if f.NVars() != n {
			return nil, ErrArityMismatch
		}
	}
	cp := make([]*multilinear.Poly, len(factors))
	copy(cp, factors)
	return &ProductPoly{factors: cp}, nil
}

// NVars returns the shared arity of the factors.
func (p *ProductPoly) NVars() int { return p.factors[0].NVars() }

// Degree returns the total degree in any single variable, which for a
// product of k multilinear polynomials is exactly k (each factor is
// degree-1 in every variable).
func (p *ProductPoly) Degree() int { return len(p.factors) }

// Evaluate computes the product of every factor's evaluation at r.
func (p *ProductPoly) Evaluate(r []field.Element) (field.Element, error) {
	acc := field.One()
	for _, f := range p.factors {
		v, err := f.Evaluate(r)
		if err != nil {
			return field.Element{}, err
		}
		acc.Mul(&acc, &v)
	}
	return acc, nil
}

// PartialEvaluate fixes varIndex to r in every factor independently.
func (p *ProductPoly) PartialEvaluate(varIndex int, r field.Element) (Poly, error) {
	out := make([]*multilinear.Poly, len(p.factors))
	for i, f := range p.factors {
		nf, err := f.PartialEvaluate(varIndex, r)
		if err != nil {
			return nil, err
		}
		out[i] = nf
	}
	return &ProductPoly{factors: out}, nil
}

// Factors exposes the underlying multilinear factors, e.g. for a layer
// reduction's gate-wise evaluation at the end of sum-check.
func (p *ProductPoly) Factors() []*multilinear.Poly { return p.factors }

// SumPoly is a sum of composed terms, e.g. the addMLE term plus the mulMLE
// term of a GKR layer reduction's round polynomial.
type SumPoly struct {
	terms []Poly
}

// NewSum builds a SumPoly from terms, which must all share NVars.
func NewSum(terms []Poly) (*SumPoly, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	n := terms[0].NVars()
	for _, t := range terms[1:] {
		if t.NVars() != n {
			return nil, ErrArityMismatch
		}
	}
	cp := make([]Poly, len(terms))
	copy(cp, terms)
	return &SumPoly{terms: cp}, nil
}

// NVars returns the shared arity of the terms.
func (s *SumPoly) NVars() int { return s.terms[0].NVars() }

// Degree returns the maximum degree across all terms.
func (s *SumPoly) Degree() int {
	d := 0
	for _, t := range s.terms {
		if td := t.Degree(); td > d {
			d = td
		}
	}
	return d
}

// Evaluate sums every term's evaluation at r.
func (s *SumPoly) Evaluate(r []field.Element) (field.Element, error) {
	acc := field.Zero()
	for _, t := range s.terms {
		v, err := t.Evaluate(r)
		if err != nil {
			return field.Element{}, err
		}
		acc.Add(&acc, &v)
	}
	return acc, nil
}

// PartialEvaluate fixes varIndex to r in every term independently.
func (s *SumPoly) PartialEvaluate(varIndex int, r field.Element) (Poly, error) {
	out := make([]Poly, len(s.terms))
	for i, t := range s.terms {
		nt, err := t.PartialEvaluate(varIndex, r)
		if err != nil {
			return nil, err
		}
		out[i] = nt
	}
	return &SumPoly{terms: out}, nil
}

// Terms exposes the underlying terms.
func (s *SumPoly) Terms() []Poly { return s.terms }
