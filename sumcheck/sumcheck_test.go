package sumcheck

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/composed"
	"github.com/giuliop/gkrzk/polynomial/multilinear"
	"github.com/giuliop/gkrzk/transcript"
)

func mlPoly(t *testing.T, vs ...uint64) *multilinear.Poly {
	t.Helper()
	vals := make([]field.Element, len(vs))
	for i, v := range vs {
		vals[i] = field.NewFromUint64(v)
	}
	p, err := multilinear.New(vals)
	if err != nil {
		t.Fatalf("multilinear.New: %v", err)
	}
	return p
}

// TestSumCheckScenario runs sum-check on the ML of v = [1,2,3,4] (n=2)
// with claimed sum 10; after two rounds the verifier's final expected
// equals v's ML at the drawn (r0, r1).
func TestSumCheckScenario(t *testing.T) {
	v := mlPoly(t, 1, 2, 3, 4)
	product, err := composed.NewProduct([]*multilinear.Poly{v})
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	claimedSum := field.NewFromUint64(10)

	proverTr := transcript.New([]byte("sumcheck-test"))
	proof, err := Prove(product, claimedSum, proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	verifierTr := transcript.New([]byte("sumcheck-test"))
	oracle := func(point []field.Element, claimedEval field.Element) (bool, error) {
		v2, err := mlPoly(t, 1, 2, 3, 4).Evaluate(point)
		if err != nil {
			return false, err
		}
		return v2.Equal(&claimedEval), nil
	}
	point, err := Verify(2, 1, claimedSum, proof, verifierTr, oracle)
	if err != nil {
		t.Fatalf("Verify rejected honest proof: %v", err)
	}
	want, err := v.Evaluate(point)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !want.Equal(&proof.FinalEval) {
		t.Errorf("proof.FinalEval = %v, want %v", proof.FinalEval, want)
	}
}

// TestTamperedRoundPolyRejected checks that tampering with any single
// round polynomial causes rejection.
func TestTamperedRoundPolyRejected(t *testing.T) {
	v := mlPoly(t, 1, 2, 3, 4)
	product, _ := composed.NewProduct([]*multilinear.Poly{v})
	claimedSum := field.NewFromUint64(10)

	proverTr := transcript.New([]byte("tamper-test"))
	proof, err := Prove(product, claimedSum, proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	// Corrupt the first round polynomial's constant term.
	bad := field.NewFromUint64(1)
	proof.RoundPolys[0][0].Add(&proof.RoundPolys[0][0], &bad)

	verifierTr := transcript.New([]byte("tamper-test"))
	oracle := func(point []field.Element, claimedEval field.Element) (bool, error) {
		return true, nil
	}
	if _, err := Verify(2, 1, claimedSum, proof, verifierTr, oracle); err == nil {
		t.Errorf("Verify accepted a tampered round polynomial")
	}
}

func TestWrongClaimedSumRejected(t *testing.T) {
	v := mlPoly(t, 1, 2, 3, 4)
	product, _ := composed.NewProduct([]*multilinear.Poly{v})

	proverTr := transcript.New([]byte("wrong-sum"))
	proof, err := Prove(product, field.NewFromUint64(10), proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	verifierTr := transcript.New([]byte("wrong-sum"))
	oracle := func(point []field.Element, claimedEval field.Element) (bool, error) { return true, nil }
	wrongSum := field.NewFromUint64(11)
	if _, err := Verify(2, 1, wrongSum, proof, verifierTr, oracle); err == nil {
		t.Errorf("Verify accepted a proof against the wrong claimed sum")
	}
}
