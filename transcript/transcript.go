// Package transcript implements the Fiat-Shamir challenge oracle shared by
// the sum-check prover/verifier, the GKR protocol and KZG batching: a single
// Keccak-256 state that absorbs opaque byte appends and squeezes challenges
// sampled (approximately) uniformly from the scalar field.
//
// Prover and verifier must append the same byte sequences in the same order
// and draw challenges at the same points in that order — any deviation
// breaks soundness.
package transcript

import (
	"golang.org/x/crypto/sha3"

	"github.com/giuliop/gkrzk/curve"
	"github.com/giuliop/gkrzk/field"
)

// Transcript is a short-lived, caller-owned sequential hash state. It is not
// safe for concurrent use, matching the single-threaded, synchronous model
// of the rest of the core.
type Transcript struct {
	state   []byte
	hashBuf [32]byte
}

// New creates an empty transcript. label, if non-empty, is absorbed first so
// distinct protocols (or protocol instances) started from otherwise-empty
// state diverge.
func New(label []byte) *Transcript {
	t := &Transcript{}
	if len(label) > 0 {
		t.Append(label)
	}
	return t
}

// Append absorbs raw bytes into the transcript state.
func (t *Transcript) Append(data []byte) {
	t.state = append(t.state, data...)
}

// AppendField absorbs the canonical big-endian encoding of a field element.
func (t *Transcript) AppendField(e field.Element) {
	b := field.Bytes(e)
	t.Append(b[:])
}

// AppendFields absorbs a sequence of field elements, in order — the shape
// used to append a round polynomial's coefficient list.
func (t *Transcript) AppendFields(es []field.Element) {
	for _, e := range es {
		t.AppendField(e)
	}
}

// AppendG1 absorbs the compressed encoding of a G1 point.
func (t *Transcript) AppendG1(p curve.G1) {
	t.Append(curve.BytesG1(p))
}

// AppendG2 absorbs the compressed encoding of a G2 point.
func (t *Transcript) AppendG2(p curve.G2) {
	t.Append(curve.BytesG2(p))
}

// Challenge squeezes 32 bytes from Keccak-256(state), reduces them modulo
// the field order, and re-absorbs the raw squeeze output before returning —
// this domain-separates consecutive challenges so two draws with no
// intervening append still differ.
func (t *Transcript) Challenge() field.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.state)
	h.Sum(t.hashBuf[:0])

	c := field.FromBytes(t.hashBuf[:])
	t.Append(t.hashBuf[:])
	return c
}

// ChallengeVector draws n challenges in sequence, the pattern GKR uses to
// derive a full r in F^n from a single transcript.
func (t *Transcript) ChallengeVector(n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		out[i] = t.Challenge()
	}
	return out
}
