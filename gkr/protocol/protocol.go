// Package protocol implements the GKR interactive-proof engine: a
// non-interactive argument of correct evaluation of a layered circuit,
// built by reducing a claim on layer l to a claim on layer l+1 via one
// sum-check instance per layer, and terminating with a caller-supplied
// InputOracle check of the input layer.
package protocol

import (
	"errors"
	"fmt"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/gkr/circuit"
	"github.com/giuliop/gkrzk/polynomial/composed"
	"github.com/giuliop/gkrzk/polynomial/multilinear"
	"github.com/giuliop/gkrzk/sumcheck"
	"github.com/giuliop/gkrzk/transcript"
)

// ErrInputClaimMismatch is returned when the terminal check against the
// input layer fails.
var ErrInputClaimMismatch = errors.New("gkr: input claim mismatch")

// SumCheckFailedError wraps a round-level sum-check failure at a given layer.
type SumCheckFailedError struct {
	Layer int
	Err   error
}

func (e *SumCheckFailedError) Error() string {
	return fmt.Sprintf("gkr: sum-check failed at layer %d: %v", e.Layer, e.Err)
}

func (e *SumCheckFailedError) Unwrap() error { return e.Err }

// LayerOracleMismatchError is returned when a layer's final sum-check claim
// disagrees with add*(b*,c*)*(u+v) + mul*(b*,c*)*(u*v) for the prover-sent
// u, v.
type LayerOracleMismatchError struct {
	Layer int
}

func (e *LayerOracleMismatchError) Error() string {
	return fmt.Sprintf("gkr: layer oracle mismatch at layer %d", e.Layer)
}

// LayerProof is the per-layer message: a sum-check proof reducing the
// layer's claim to a claim at two points b*, c* in the layer below, plus the
// two evaluations the verifier cannot compute itself.
type LayerProof struct {
	SumCheck *sumcheck.Proof
	U, V     field.Element
}

// Proof is the full GKR transcript: one LayerProof per circuit layer.
type Proof struct {
	LayerProofs []LayerProof
}

// InputOracle resolves the terminal claim against the input layer. The
// package provides DirectInputOracle, which evaluates a public input
// directly; it provides no oracle backed by a KZG opening of committed
// inputs.
type InputOracle func(point []field.Element, claimedEval field.Element) (bool, error)

// DirectInputOracle builds an InputOracle that checks the terminal claim
// against the multilinear extension of input directly, for the common case
// where the input is itself public.
func DirectInputOracle(input []field.Element) InputOracle {
	return func(point []field.Element, claimedEval field.Element) (bool, error) {
		w, err := multilinear.New(input)
		if err != nil {
			return false, err
		}
		v, err := w.Evaluate(point)
		if err != nil {
			return false, err
		}
		return v.Equal(&claimedEval), nil
	}
}

// Prove evaluates c on input and builds a GKR proof that the resulting
// output is the correct evaluation. It returns the proof and the output
// vector the verifier must be given out of band.
func Prove(c *circuit.Circuit, input []field.Element, tr *transcript.Transcript) (*Proof, []field.Element, error) {
	trace, err := c.Evaluate(input)
	if err != nil {
		return nil, nil, err
	}
	output := trace[0]

	tr.AppendFields(output)
	w0, err := multilinear.New(output)
	if err != nil {
		return nil, nil, err
	}
	r0 := tr.ChallengeVector(w0.NVars())
	currentClaim, err := w0.Evaluate(r0)
	if err != nil {
		return nil, nil, err
	}
	currentPoint := r0

	layerProofs := make([]LayerProof, c.Depth())
	for l := 0; l < c.Depth(); l++ {
		wNext, err := multilinear.New(trace[l+1])
		if err != nil {
			return nil, nil, err
		}
		m1 := wNext.NVars()

		addStar, mulStar, err := boundWiring(c, l, currentPoint)
		if err != nil {
			return nil, nil, err
		}

		wb := tileOverC(wNext, m1)
		wc := tileOverB(wNext, m1)
		wbc, err := wb.Add(wc)
		if err != nil {
			return nil, nil, err
		}

		term1, err := composed.NewProduct([]*multilinear.Poly{addStar, wbc})
		if err != nil {
			return nil, nil, err
		}
		term2, err := composed.NewProduct([]*multilinear.Poly{mulStar, wb, wc})
		if err != nil {
			return nil, nil, err
		}
		fl, err := composed.NewSum([]composed.Poly{term1, term2})
		if err != nil {
			return nil, nil, err
		}

		scProof, err := sumcheck.Prove(fl, currentClaim, tr)
		if err != nil {
			return nil, nil, err
		}
		bStar := scProof.FinalPoint[:m1]
		cStar := scProof.FinalPoint[m1:]

		u, err := wNext.Evaluate(bStar)
		if err != nil {
			return nil, nil, err
		}
		v, err := wNext.Evaluate(cStar)
		if err != nil {
			return nil, nil, err
		}

		tr.AppendField(u)
		tr.AppendField(v)
		alpha := tr.Challenge()

		currentPoint = combinePoints(bStar, cStar, alpha)
		currentClaim = lineCombine(u, v, alpha)
		layerProofs[l] = LayerProof{SumCheck: scProof, U: u, V: v}
	}

	return &Proof{LayerProofs: layerProofs}, output, nil
}

// Verify checks proof against the claimed output of c, replaying the
// transcript to rederive every challenge and terminating with inputOracle
// against the input layer.
func Verify(c *circuit.Circuit, claimedOutput []field.Element, proof *Proof, tr *transcript.Transcript, inputOracle InputOracle) (bool, error) {
	if len(proof.LayerProofs) != c.Depth() {
		return false, ErrInputClaimMismatch
	}

	tr.AppendFields(claimedOutput)
	w0, err := multilinear.New(claimedOutput)
	if err != nil {
		return false, err
	}
	r0 := tr.ChallengeVector(w0.NVars())
	currentClaim, err := w0.Evaluate(r0)
	if err != nil {
		return false, err
	}
	currentPoint := r0

	for l := 0; l < c.Depth(); l++ {
		_, m1, err := c.LayerVars(l)
		if err != nil {
			return false, err
		}

		lp := proof.LayerProofs[l]
		oracle := func(point []field.Element, claimedEval field.Element) (bool, error) {
			addStar, mulStar, err := boundWiring(c, l, currentPoint)
			if err != nil {
				return false, err
			}
			addE, err := addStar.Evaluate(point)
			if err != nil {
				return false, err
			}
			mulE, err := mulStar.Evaluate(point)
			if err != nil {
				return false, err
			}
			var sum, prod, t1, t2, expect field.Element
			sum.Add(&lp.U, &lp.V)
			t1.Mul(&addE, &sum)
			prod.Mul(&lp.U, &lp.V)
			t2.Mul(&mulE, &prod)
			expect.Add(&t1, &t2)
			return expect.Equal(&claimedEval), nil
		}

		challenges, err := sumcheck.Verify(2*m1, 3, currentClaim, lp.SumCheck, tr, oracle)
		if err != nil {
			if errors.Is(err, sumcheck.ErrBadFinalEvaluation) {
				return false, &LayerOracleMismatchError{Layer: l}
			}
			return false, &SumCheckFailedError{Layer: l, Err: err}
		}
		bStar := challenges[:m1]
		cStar := challenges[m1:]

		tr.AppendField(lp.U)
		tr.AppendField(lp.V)
		alpha := tr.Challenge()

		currentPoint = combinePoints(bStar, cStar, alpha)
		currentClaim = lineCombine(lp.U, lp.V, alpha)
	}

	ok, err := inputOracle(currentPoint, currentClaim)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrInputClaimMismatch
	}
	return true, nil
}

// boundWiring partially evaluates layer l's add and mul wiring MLEs at
// point, the shared step both prover and verifier perform to recover
// add*_l, mul*_l over the remaining 2*m_{l+1} variables.
func boundWiring(c *circuit.Circuit, l int, point []field.Element) (add, mul *multilinear.Poly, err error) {
	add, mul, err = c.WiringMLEs(l)
	if err != nil {
		return nil, nil, err
	}
	for _, ri := range point {
		add, err = add.PartialEvaluate(0, ri)
		if err != nil {
			return nil, nil, err
		}
		mul, err = mul.PartialEvaluate(0, ri)
		if err != nil {
			return nil, nil, err
		}
	}
	return add, mul, nil
}

// tileOverC extends w (a function of b) into a function of (b,c) constant
// in c, the multilinear extension W_{l+1}_b the layer reduction's composed
// polynomial factors on.
func tileOverC(w *multilinear.Poly, m1 int) *multilinear.Poly {
	size1 := 1 << uint(m1)
	evals := make([]field.Element, size1*size1)
	for b := 0; b < size1; b++ {
		v := w.At(b)
		for cc := 0; cc < size1; cc++ {
			evals[b*size1+cc] = v
		}
	}
	p, _ := multilinear.New(evals)
	return p
}

// tileOverB extends w (a function of c) into a function of (b,c) constant
// in b, the multilinear extension W_{l+1}_c.
func tileOverB(w *multilinear.Poly, m1 int) *multilinear.Poly {
	size1 := 1 << uint(m1)
	evals := make([]field.Element, size1*size1)
	for b := 0; b < size1; b++ {
		for cc := 0; cc < size1; cc++ {
			evals[b*size1+cc] = w.At(cc)
		}
	}
	p, _ := multilinear.New(evals)
	return p
}

// combinePoints applies the line-combination trick pointwise: r_{l+1} =
// b*(1-alpha) + c*alpha.
func combinePoints(b, c []field.Element, alpha field.Element) []field.Element {
	out := make([]field.Element, len(b))
	for i := range out {
		out[i] = lineCombine(b[i], c[i], alpha)
	}
	return out
}

// lineCombine returns lo*(1-alpha) + hi*alpha.
func lineCombine(lo, hi, alpha field.Element) field.Element {
	var diff, term, out field.Element
	diff.Sub(&hi, &lo)
	term.Mul(&diff, &alpha)
	out.Add(&lo, &term)
	return out
}
