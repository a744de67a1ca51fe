// Package multilinear implements dense multilinear extensions over the
// Boolean hypercube: a vector of 2^n field values indexed by the n-bit
// lexicographic enumeration of {0,1}^n.
//
// Variable-indexing convention: variable 0 is the most significant bit of
// the index. All wiring-ML constructions in gkr/circuit must use this same
// convention.
package multilinear

import (
	"errors"

	"github.com/giuliop/gkrzk/field"
)

// ErrShapeMismatch is returned when an evaluation vector's length is not a
// power of two, or a point's arity disagrees with NVars.
var ErrShapeMismatch = errors.New("multilinear: shape mismatch")

// Poly is the multilinear extension of a length-2^n evaluation vector.
type Poly struct {
	evals []field.Element
	n     int
}

// New builds a Poly from a dense evaluation vector whose length must be a
// power of two (including length 1, n=0).
func New(evals []field.Element) (*Poly, error) {
	n, ok := log2(len(evals))
	if !ok {
		return nil, ErrShapeMismatch
	}
	cp := make([]field.Element, len(evals))
	copy(cp, evals)
	return &Poly{evals: cp, n: n}, nil
}

func log2(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k, true
}

// NVars returns the number of Boolean variables, log2(len(evals)).
func (p *Poly) NVars() int { return p.n }

// Evals returns the underlying evaluation vector. Callers must not mutate it.
func (p *Poly) Evals() []field.Element { return p.evals }

// At returns the raw evaluation at Boolean hypercube index idx (the value at
// the binary representation of idx, MSB-first per the variable-0-is-MSB
// convention), i.e. v[idx].
func (p *Poly) At(idx int) field.Element { return p.evals[idx] }

// Evaluate computes p(r) for r in F^n via iterated partial evaluation,
// halving the working vector one variable at a time.
func (p *Poly) Evaluate(r []field.Element) (field.Element, error) {
	if len(r) != p.n {
		return field.Element{}, ErrShapeMismatch
	}
	cur := make([]field.Element, len(p.evals))
	copy(cur, p.evals)
	for _, ri := range r {
		half := len(cur) / 2
		next := make([]field.Element, half)
		for i := 0; i < half; i++ {
			next[i] = foldPair(cur[i], cur[i+half], ri)
		}
		cur = next
	}
	return cur[0], nil
}

// foldPair computes (1-r)*lo + r*hi = lo + r*(hi-lo).
func foldPair(lo, hi, r field.Element) field.Element {
	var diff, term, out field.Element
	diff.Sub(&hi, &lo)
	term.Mul(&diff, &r)
	out.Add(&lo, &term)
	return out
}

// PartialEvaluate fixes variable varIndex to r and returns the resulting
// Poly over n-1 variables. varIndex follows the variable-0-is-MSB
// convention: fixing variable i splits the evaluation vector into
// consecutive blocks of size 2^(n-1-i) and folds each "low" block with its
// paired "high" block 2^(n-1-i) positions away.
func (p *Poly) PartialEvaluate(varIndex int, r field.Element) (*Poly, error) {
	if varIndex < 0 || varIndex >= p.n {
		return nil, ErrShapeMismatch
	}
	blockSize := 1 << uint(p.n-1-varIndex)
	out := make([]field.Element, len(p.evals)/2)
	// Walk pairs of blocks: for each group of 2*blockSize entries, the first
	// blockSize entries are "low" (bit=0) and the next blockSize are "high" (bit=1).
	outPos := 0
	for base := 0; base < len(p.evals); base += 2 * blockSize {
		for off := 0; off < blockSize; off++ {
			lo := p.evals[base+off]
			hi := p.evals[base+blockSize+off]
			out[outPos] = foldPair(lo, hi, r)
			outPos++
		}
	}
	return &Poly{evals: out, n: p.n - 1}, nil
}

// Add returns the pointwise sum of p and q, which must share NVars.
func (p *Poly) Add(q *Poly) (*Poly, error) {
	if p.n != q.n {
		return nil, ErrShapeMismatch
	}
	out := make([]field.Element, len(p.evals))
	for i := range out {
		out[i].Add(&p.evals[i], &q.evals[i])
	}
	return &Poly{evals: out, n: p.n}, nil
}

// ScalarMul returns c*p, pointwise.
func (p *Poly) ScalarMul(c field.Element) *Poly {
	out := make([]field.Element, len(p.evals))
	for i := range out {
		out[i].Mul(&p.evals[i], &c)
	}
	return &Poly{evals: out, n: p.n}
}

// BitsToIndex packs a Boolean point (MSB-first, matching variable 0 = MSB)
// into its hypercube index: ML(v).Evaluate(x) == v[BitsToIndex(x)] for x in
// {0,1}^n.
func BitsToIndex(bits []int) int {
	idx := 0
	for _, b := range bits {
		idx = idx<<1 | (b & 1)
	}
	return idx
}
