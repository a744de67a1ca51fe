// Package sumcheck implements the sum-check interactive proof: the prover
// convinces the verifier that a composed polynomial sums to a
// claimed value over the Boolean hypercube, through nv rounds each sending a
// univariate "round polynomial" and receiving back a random challenge.
//
// The verifier never evaluates the composed polynomial itself — after the
// last round it hands the accumulated challenge point to a caller-supplied
// oracle (an ML evaluation, or the combined-claim oracle GKR's layer
// reduction builds), matching sum-check's role as a reduction rather than a
// standalone proof of a fact about the polynomial's origin.
package sumcheck

import (
	"errors"
	"fmt"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/composed"
	"github.com/giuliop/gkrzk/polynomial/univariate"
	"github.com/giuliop/gkrzk/transcript"
)

// ErrBadFinalEvaluation is returned when the final oracle check fails.
var ErrBadFinalEvaluation = errors.New("sumcheck: final evaluation mismatch")

// RoundCheckFailedError reports which round's consistency check failed:
// g_i(0) + g_i(1) must equal the previous round's claimed value (or the
// initial claimed sum, for round 0).
type RoundCheckFailedError struct {
	Round int
}

func (e *RoundCheckFailedError) Error() string {
	return fmt.Sprintf("sumcheck: round %d check failed", e.Round)
}

// Proof is the transcript of round polynomials a sum-check prover sends.
type Proof struct {
	RoundPolys []univariate.Polynomial
	FinalPoint []field.Element
	FinalEval  field.Element
}

// Prove runs the prover side over poly, claiming it sums to claimedSum
// across its full Boolean hypercube. Each round polynomial is recovered by
// evaluating the partially-bound poly at 0, 1, ..., degree and interpolating
// (the reduce_to_univariate step), then absorbed into tr before drawing the
// round's challenge, so prover and verifier derive identical
// challenges from identical transcripts.
func Prove(poly composed.Poly, claimedSum field.Element, tr *transcript.Transcript) (*Proof, error) {
	nv := poly.NVars()
	degree := poly.Degree()

	roundPolys := make([]univariate.Polynomial, nv)
	challenges := make([]field.Element, nv)
	cur := poly

	for i := 0; i < nv; i++ {
		points := make([]univariate.Point, degree+1)
		for t := 0; t <= degree; t++ {
			tf := field.NewFromUint64(uint64(t))
			fixed, err := cur.PartialEvaluate(0, tf)
			if err != nil {
				return nil, err
			}
			s, err := sumOverHypercube(fixed)
			if err != nil {
				return nil, err
			}
			points[t] = univariate.Point{X: tf, Y: s}
		}
		gi, err := univariate.Interpolate(points)
		if err != nil {
			return nil, err
		}
		roundPolys[i] = gi

		tr.AppendFields(gi)
		r := tr.Challenge()
		challenges[i] = r

		next, err := cur.PartialEvaluate(0, r)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	finalEval, err := cur.Evaluate(nil)
	if err != nil {
		return nil, err
	}
	return &Proof{RoundPolys: roundPolys, FinalPoint: challenges, FinalEval: finalEval}, nil
}

// FinalOracle checks a sum-check proof's last claim against the true value
// of the polynomial being summed at the final challenge point. The caller
// supplies it because the verifier, by design, only ever queries the
// polynomial at a single point rather than evaluating it directly.
type FinalOracle func(point []field.Element, claimedEval field.Element) (bool, error)

// Verify replays the round-by-round consistency checks using tr to recover
// the same challenges the prover drew, then delegates the final check to
// oracle. It returns the accumulated challenge point alongside the
// pass/fail result so callers (e.g. GKR's layer reduction) can reuse it.
func Verify(nv, degree int, claimedSum field.Element, proof *Proof, tr *transcript.Transcript, oracle FinalOracle) ([]field.Element, error) {
	if len(proof.RoundPolys) != nv {
		return nil, &RoundCheckFailedError{Round: 0}
	}

	expected := claimedSum
	challenges := make([]field.Element, nv)
	for i := 0; i < nv; i++ {
		gi := proof.RoundPolys[i]
		if gi.Degree() > degree {
			return nil, &RoundCheckFailedError{Round: i}
		}

		zero := gi.Evaluate(field.Zero())
		one := gi.Evaluate(field.One())
		var sum field.Element
		sum.Add(&zero, &one)
		if !sum.Equal(&expected) {
			return nil, &RoundCheckFailedError{Round: i}
		}

		tr.AppendFields(gi)
		r := tr.Challenge()
		challenges[i] = r
		expected = gi.Evaluate(r)
	}

	ok, err := oracle(challenges, expected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBadFinalEvaluation
	}
	return challenges, nil
}

// sumOverHypercube evaluates p at every point of {0,1}^p.NVars() and sums
// the results. This is the brute-force definition of the sum-check claim;
// it is only ever called on a poly with few enough remaining variables to
// be tractable (the per-round reduction already fixed all earlier ones).
func sumOverHypercube(p composed.Poly) (field.Element, error) {
	nv := p.NVars()
	if nv == 0 {
		return p.Evaluate(nil)
	}
	acc := field.Zero()
	point := make([]field.Element, nv)
	total := 1 << uint(nv)
	for mask := 0; mask < total; mask++ {
		for i := 0; i < nv; i++ {
			bit := (mask >> uint(nv-1-i)) & 1
			point[i] = field.NewFromUint64(uint64(bit))
		}
		v, err := p.Evaluate(point)
		if err != nil {
			return field.Element{}, err
		}
		acc.Add(&acc, &v)
	}
	return acc, nil
}
