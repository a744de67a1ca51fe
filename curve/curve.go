// Package curve pins the pairing-friendly curve used by kzg to BN254 and
// collects the group-arithmetic and pairing helpers the rest of the module
// needs on top of gnark-crypto, aliasing the generated point types directly
// rather than wrapping them.
package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/giuliop/gkrzk/field"
)

// G1 and G2 are the two source groups of the BN254 pairing e: G1 x G2 -> GT.
type (
	G1 = bn254.G1Affine
	G2 = bn254.G2Affine
)

// G1Gen and G2Gen return the generators of G1 and G2 respectively.
func G1Gen() G1 {
	_, _, g1, _ := bn254.Generators()
	return g1
}

func G2Gen() G2 {
	_, _, _, g2 := bn254.Generators()
	return g2
}

// ScalarMulG1 returns s*p.
func ScalarMulG1(p G1, s field.Element) G1 {
	var out G1
	var bi big.Int
	s.BigInt(&bi)
	out.ScalarMultiplication(&p, &bi)
	return out
}

// ScalarMulG2 returns s*p.
func ScalarMulG2(p G2, s field.Element) G2 {
	var out G2
	var bi big.Int
	s.BigInt(&bi)
	out.ScalarMultiplication(&p, &bi)
	return out
}

// AddG1 returns p+q, going through Jacobian coordinates as gnark-crypto's
// affine type has no direct general addition.
func AddG1(p, q G1) G1 {
	var pj, qj bn254.G1Jac
	pj.FromAffine(&p)
	qj.FromAffine(&q)
	pj.AddAssign(&qj)
	var out G1
	out.FromJacobian(&pj)
	return out
}

// SubG1 returns p-q.
func SubG1(p, q G1) G1 {
	var pj, qj bn254.G1Jac
	pj.FromAffine(&p)
	qj.FromAffine(&q)
	pj.SubAssign(&qj)
	var out G1
	out.FromJacobian(&pj)
	return out
}

// NegG1 returns -p.
func NegG1(p G1) G1 {
	var out G1
	out.Neg(&p)
	return out
}

// AddG2 returns p+q.
func AddG2(p, q G2) G2 {
	var pj, qj bn254.G2Jac
	pj.FromAffine(&p)
	qj.FromAffine(&q)
	pj.AddAssign(&qj)
	var out G2
	out.FromJacobian(&pj)
	return out
}

// SubG2 returns p-q.
func SubG2(p, q G2) G2 {
	var pj, qj bn254.G2Jac
	pj.FromAffine(&p)
	qj.FromAffine(&q)
	pj.SubAssign(&qj)
	var out G2
	out.FromJacobian(&pj)
	return out
}

// MultiExpG1 computes sum_i scalars[i]*points[i], delegating to
// gnark-crypto's multi-exponentiation, the same entry point
// mimoo-gnark-crypto's kzg.Commit uses for SRS-weighted sums.
func MultiExpG1(points []G1, scalars []field.Element) (G1, error) {
	var out G1
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1{}, err
	}
	return out, nil
}

// PairingCheck returns true iff prod_i e(P[i], Q[i]) == 1 in GT, the single
// multi-pairing product test KZG.Verify reduces to.
func PairingCheck(p []G1, q []G2) (bool, error) {
	return bn254.PairingCheck(p, q)
}

// BytesG1 returns the compressed canonical encoding of p.
func BytesG1(p G1) []byte {
	b := p.Bytes()
	return b[:]
}

// BytesG2 returns the compressed canonical encoding of p.
func BytesG2(p G2) []byte {
	b := p.Bytes()
	return b[:]
}
