package protocol

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/internal/testvectors"
	"github.com/giuliop/gkrzk/transcript"
)

// TestGKRScenario: a 2-layer circuit with one mul gate g = x0*x1 over
// inputs [3,4] evaluates to [12]; the GKR proof verifies, and replacing 12
// with 13 causes rejection.
func TestGKRScenario(t *testing.T) {
	c, input, err := testvectors.MulGateCircuit()
	if err != nil {
		t.Fatalf("MulGateCircuit: %v", err)
	}

	proverTr := transcript.New([]byte("gkr-test"))
	proof, output, err := Prove(c, input, proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	want := field.NewFromUint64(12)
	if !output[0].Equal(&want) {
		t.Fatalf("output = %v, want 12", output[0])
	}

	verifierTr := transcript.New([]byte("gkr-test"))
	ok, err := Verify(c, output, proof, verifierTr, DirectInputOracle(input))
	if err != nil || !ok {
		t.Fatalf("Verify rejected honest proof: ok=%v err=%v", ok, err)
	}

	tampered := []field.Element{field.NewFromUint64(13)}
	verifierTr2 := transcript.New([]byte("gkr-test"))
	ok, err = Verify(c, tampered, proof, verifierTr2, DirectInputOracle(input))
	if ok {
		t.Errorf("Verify accepted a tampered output")
	}
	if err == nil {
		t.Errorf("Verify returned nil error for a tampered output")
	}
}

// TestGKREndToEndGenericCircuit exercises a deeper circuit: two mul gates
// feeding one add gate, over four input values.
func TestGKREndToEndGenericCircuit(t *testing.T) {
	c, input, err := testvectors.DeepCircuit()
	if err != nil {
		t.Fatalf("DeepCircuit: %v", err)
	}
	// layer 1: [2*3, 5*7] = [6, 35]; layer 0: [6+35] = [41]
	proverTr := transcript.New([]byte("gkr-deep"))
	proof, output, err := Prove(c, input, proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	want := field.NewFromUint64(41)
	if !output[0].Equal(&want) {
		t.Fatalf("output = %v, want 41", output[0])
	}

	verifierTr := transcript.New([]byte("gkr-deep"))
	ok, err := Verify(c, output, proof, verifierTr, DirectInputOracle(input))
	if err != nil || !ok {
		t.Fatalf("Verify rejected honest proof: ok=%v err=%v", ok, err)
	}
}

func TestInputMismatchRejected(t *testing.T) {
	c, input, err := testvectors.MulGateCircuit()
	if err != nil {
		t.Fatalf("MulGateCircuit: %v", err)
	}

	proverTr := transcript.New([]byte("gkr-input-mismatch"))
	proof, output, err := Prove(c, input, proverTr)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	wrongInput := []field.Element{field.NewFromUint64(3), field.NewFromUint64(5)}
	verifierTr := transcript.New([]byte("gkr-input-mismatch"))
	ok, err := Verify(c, output, proof, verifierTr, DirectInputOracle(wrongInput))
	if ok || err == nil {
		t.Errorf("Verify accepted a proof against a mismatched input: ok=%v err=%v", ok, err)
	}
}
