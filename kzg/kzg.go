// Package kzg implements the KZG polynomial commitment scheme over BN254:
// a trusted setup produces powers of a secret τ in G1 and G2;
// committing is a multi-exponentiation against those powers; opening
// produces a quotient-polynomial commitment; verifying is a single
// multi-pairing check. Grounded on gnark-crypto's generated per-curve kzg
// package (ecc/bls12-377/fr/kzg/kzg.go), adapted to this module's own
// field/curve/transcript layer instead of gnark-crypto's polynomial and
// fiat-shamir packages.
package kzg

import (
	"errors"
	"io"

	"github.com/giuliop/gkrzk/curve"
	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/fft"
	"github.com/giuliop/gkrzk/polynomial/univariate"
	"github.com/giuliop/gkrzk/transcript"
)

// ErrDegreeTooHigh is returned when a polynomial has no coefficients or more
// coefficients than the SRS has G1 powers. The check is on the length of the
// coefficient slice, trailing zero coefficients included, not on
// Polynomial.Degree.
var ErrDegreeTooHigh = errors.New("kzg: polynomial degree exceeds SRS size")

// ErrBadOpening names a failed opening check. Verify and BatchVerify do not
// return it: they report a failed pairing check as (false, nil).
var ErrBadOpening = errors.New("kzg: opening proof failed to verify")

// ErrSetupDegreeExceeded is returned by Setup when asked for zero powers.
var ErrSetupDegreeExceeded = errors.New("kzg: setup requires at least one power of tau")

// ErrMismatchedLengths is returned when batch inputs disagree in length.
var ErrMismatchedLengths = errors.New("kzg: mismatched digest/polynomial count")

// SRS is the structured reference string from a trusted setup: powers of τ
// in G1 up to the supported degree, and τ itself (alongside the generator)
// in G2 for the pairing check. The secret τ is never retained in the SRS and
// must be discarded by whoever ran Setup.
type SRS struct {
	G1 []curve.G1 // G1[i] = tau^i * G1gen
	G2 [2]curve.G2 // G2[0] = G2gen, G2[1] = tau * G2gen
}

// Setup runs a (non-ceremonial) trusted setup for polynomials of degree up
// to maxDegree, drawing τ from r (crypto/rand.Reader if r is nil). The
// caller is responsible for ensuring τ is not recoverable afterward; this
// function is for testing and research use, not production ceremonies.
func Setup(maxDegree int, r io.Reader) (*SRS, error) {
	if maxDegree < 0 {
		return nil, ErrSetupDegreeExceeded
	}
	tau, err := field.Random(r)
	if err != nil {
		return nil, err
	}

	srs := &SRS{G1: make([]curve.G1, maxDegree+1)}
	srs.G1[0] = curve.G1Gen()
	srs.G2[0] = curve.G2Gen()
	srs.G2[1] = curve.ScalarMulG2(srs.G2[0], tau)

	power := field.One()
	for i := 1; i <= maxDegree; i++ {
		power.Mul(&power, &tau)
		srs.G1[i] = curve.ScalarMulG1(srs.G1[0], power)
	}
	return srs, nil
}

// Commit commits to p via multi-exponentiation against the SRS's G1 powers.
func Commit(p univariate.Polynomial, srs *SRS) (curve.G1, error) {
	if len(p) == 0 || len(p) > len(srs.G1) {
		return curve.G1{}, ErrDegreeTooHigh
	}
	return curve.MultiExpG1(srs.G1[:len(p)], p)
}

// CommitEvaluations commits to the polynomial whose values on domain's
// multiplicative subgroup are evals, recovering its coefficients via the
// domain's inverse FFT before delegating to Commit. This is the fast path
// for provers that already hold a polynomial in evaluation form (e.g. a
// layer's trace evaluated over a power-of-two domain) rather than
// coefficient form.
func CommitEvaluations(domain *fft.Domain, evals []field.Element, srs *SRS) (curve.G1, error) {
	p, err := univariate.InterpolateOnDomain(domain, evals)
	if err != nil {
		return curve.G1{}, err
	}
	return Commit(p, srs)
}

// OpeningProof is a KZG opening of one polynomial at one point.
type OpeningProof struct {
	H            curve.G1 // commitment to (p(X) - p(z)) / (X - z)
	Point        field.Element
	ClaimedValue field.Element
}

// Open produces an opening proof that p(point) = the returned ClaimedValue,
// via synthetic division of p by (X - point).
func Open(p univariate.Polynomial, point field.Element, srs *SRS) (OpeningProof, error) {
	if len(p) == 0 || len(p) > len(srs.G1) {
		return OpeningProof{}, ErrDegreeTooHigh
	}
	claimed := p.Evaluate(point)
	h := divideByLinear(p, point, claimed)

	hCommit, err := Commit(h, srs)
	if err != nil {
		return OpeningProof{}, err
	}
	return OpeningProof{H: hCommit, Point: point, ClaimedValue: claimed}, nil
}

// divideByLinear computes (f - fa) / (X - a) by synthetic division,
// assuming f(a) == fa, so the remainder is exactly zero.
func divideByLinear(f univariate.Polynomial, a, fa field.Element) univariate.Polynomial {
	work := make(univariate.Polynomial, len(f))
	copy(work, f)
	work[0].Sub(&work[0], &fa)

	quotient := make(univariate.Polynomial, len(work)-1)
	carry := field.Zero()
	for i := len(work) - 1; i >= 1; i-- {
		var t field.Element
		t.Mul(&carry, &a)
		work[i].Add(&work[i], &t)
		quotient[i-1] = work[i]
		carry = work[i]
	}
	return quotient
}

// Verify checks that commitment opens to proof.ClaimedValue at proof.Point,
// via the single pairing equation
//
//	e(C - [v]G1, G2) == e(H, [τ]G2 - [z]G2)
//
// rearranged (as gnark-crypto's generated kzg.Verify does) into one
// multi-pairing check e(C-[v]G1, G2gen) * e(-H, [τ-z]G2) == 1.
func Verify(commitment curve.G1, proof OpeningProof, srs *SRS) (bool, error) {
	claimedG1 := curve.ScalarMulG1(srs.G1[0], proof.ClaimedValue)

	lhs := curve.SubG1(commitment, claimedG1)
	negH := curve.NegG1(proof.H)

	tauMinusZ := curve.SubG2(srs.G2[1], curve.ScalarMulG2(srs.G2[0], proof.Point))

	ok, err := curve.PairingCheck([]curve.G1{lhs, negH}, []curve.G2{srs.G2[0], tauMinusZ})
	if err != nil {
		return false, err
	}
	return ok, nil
}

// BatchOpeningProof is a same-point opening proof for several polynomials at
// once, folded via a transcript-derived challenge γ. Batching is same-point
// only; cross-point proof aggregation is out of scope.
type BatchOpeningProof struct {
	H             curve.G1
	Point         field.Element
	ClaimedValues []field.Element
}

// BatchOpen opens every polynomial in ps at the same point, folding the
// quotients with powers of a transcript-derived γ bound to the point and
// every commitment, so no party can choose γ after seeing the quotients.
func BatchOpen(ps []univariate.Polynomial, digests []curve.G1, point field.Element, tr *transcript.Transcript, srs *SRS) (BatchOpeningProof, error) {
	if len(ps) != len(digests) {
		return BatchOpeningProof{}, ErrMismatchedLengths
	}
	claimed := make([]field.Element, len(ps))
	for i, p := range ps {
		if len(p) == 0 || len(p) > len(srs.G1) {
			return BatchOpeningProof{}, ErrDegreeTooHigh
		}
		claimed[i] = p.Evaluate(point)
	}

	gamma := deriveGamma(point, digests, tr)

	folded := make(univariate.Polynomial, 0)
	gammaPow := field.One()
	for _, p := range ps {
		folded = folded.Add(p.ScalarMul(gammaPow))
		gammaPow.Mul(&gammaPow, &gamma)
	}
	var foldedClaim field.Element
	gammaPow = field.One()
	for _, c := range claimed {
		var term field.Element
		term.Mul(&c, &gammaPow)
		foldedClaim.Add(&foldedClaim, &term)
		gammaPow.Mul(&gammaPow, &gamma)
	}

	h := divideByLinear(folded, point, foldedClaim)
	hCommit, err := Commit(h, srs)
	if err != nil {
		return BatchOpeningProof{}, err
	}
	return BatchOpeningProof{H: hCommit, Point: point, ClaimedValues: claimed}, nil
}

// BatchVerify verifies a BatchOpeningProof by folding the digests and
// claimed values with the same γ derivation BatchOpen used, then delegating to a
// single Verify call on the folded commitment.
func BatchVerify(digests []curve.G1, proof BatchOpeningProof, tr *transcript.Transcript, srs *SRS) (bool, error) {
	if len(digests) != len(proof.ClaimedValues) {
		return false, ErrMismatchedLengths
	}
	gamma := deriveGamma(proof.Point, digests, tr)

	var foldedDigest curve.G1
	var foldedClaim field.Element
	gammaPow := field.One()
	for i := range digests {
		weighted := curve.ScalarMulG1(digests[i], gammaPow)
		if i == 0 {
			foldedDigest = weighted
		} else {
			foldedDigest = curve.AddG1(foldedDigest, weighted)
		}
		var term field.Element
		term.Mul(&proof.ClaimedValues[i], &gammaPow)
		foldedClaim.Add(&foldedClaim, &term)
		gammaPow.Mul(&gammaPow, &gamma)
	}

	return Verify(foldedDigest, OpeningProof{H: proof.H, Point: proof.Point, ClaimedValue: foldedClaim}, srs)
}

// deriveGamma binds the folding challenge to the evaluation point and every
// digest being folded, the same binding gnark-crypto's deriveGamma performs
// with its own fiat-shamir transcript.
func deriveGamma(point field.Element, digests []curve.G1, tr *transcript.Transcript) field.Element {
	tr.AppendField(point)
	for _, d := range digests {
		tr.AppendG1(d)
	}
	return tr.Challenge()
}
