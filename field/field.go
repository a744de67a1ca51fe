// Package field pins the scalar field used throughout gkrzk to the BN254
// scalar field, and collects the sampling and serialization helpers the
// rest of the module needs on top of gnark-crypto's generated element type.
package field

import (
	"crypto/rand"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is the scalar field element used by every polynomial, sum-check,
// GKR and KZG operation in this module. It is a type alias, not a wrapper:
// all of fr.Element's methods (Add, Sub, Mul, Inverse, Exp, ...) apply
// directly.
type Element = fr.Element

// ByteLen is the size in bytes of the canonical big-endian encoding of an
// Element, matching fr.Bytes.
const ByteLen = fr.Bytes

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// One returns the multiplicative identity.
func One() Element {
	var o Element
	o.SetOne()
	return o
}

// NewFromUint64 builds an element from a small non-negative integer,
// convenient for test vectors and round-point sampling (0, 1, 2, ...) in
// reduce_to_univariate.
func NewFromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// Random draws an element uniformly from the field using r as entropy
// source. Passing nil uses crypto/rand, matching the library-wide rule that
// randomness only ever enters via an explicit generator.
func Random(r io.Reader) (Element, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [ByteLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Element{}, err
	}
	var e Element
	e.SetBytes(buf[:])
	return e, nil
}

// FromBytes decodes the canonical big-endian encoding produced by Bytes,
// reducing modulo the field order as fr.Element.SetBytes does.
func FromBytes(b []byte) Element {
	var e Element
	e.SetBytes(b)
	return e
}

// Bytes returns the canonical 32-byte big-endian encoding of e.
func Bytes(e Element) [ByteLen]byte {
	return e.Bytes()
}

// Inv returns the multiplicative inverse of e. Inverting zero is a bug in
// the caller, not a recoverable user error, so it is reported via the
// boolean return rather than silently yielding zero.
func Inv(e Element) (Element, bool) {
	if e.IsZero() {
		return Element{}, false
	}
	var out Element
	out.Inverse(&e)
	return out, true
}
