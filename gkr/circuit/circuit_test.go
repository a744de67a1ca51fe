package circuit

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
)

// TestMulGateScenario: a 2-layer circuit with one mul gate g = x0*x1 over
// inputs [3,4] evaluates to [12].
func TestMulGateScenario(t *testing.T) {
	c, err := NewCircuit([]Layer{
		{{Op: Mul, Left: 0, Right: 1}},
	}, 2)
	if err != nil {
		t.Fatalf("NewCircuit: %v", err)
	}
	trace, err := c.Evaluate([]field.Element{field.NewFromUint64(3), field.NewFromUint64(4)})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := field.NewFromUint64(12)
	if !trace[0][0].Equal(&want) {
		t.Errorf("output = %v, want 12", trace[0][0])
	}
}

func TestEvaluateShapeMismatch(t *testing.T) {
	c, _ := NewCircuit([]Layer{{{Op: Mul, Left: 0, Right: 1}}}, 2)
	if _, err := c.Evaluate([]field.Element{field.One()}); err != ErrShapeMismatch {
		t.Errorf("Evaluate with wrong input length = %v, want ErrShapeMismatch", err)
	}
}

func TestNewCircuitRejectsNonPowerOfTwoWidth(t *testing.T) {
	_, err := NewCircuit([]Layer{
		{{Op: Mul, Left: 0, Right: 1}, {Op: Add, Left: 0, Right: 1}, {Op: Add, Left: 0, Right: 1}},
	}, 2)
	if err != ErrShapeMismatch {
		t.Errorf("NewCircuit with width-3 layer = %v, want ErrShapeMismatch", err)
	}
}

func TestWiringMLEsSinglePoint(t *testing.T) {
	c, _ := NewCircuit([]Layer{{{Op: Mul, Left: 0, Right: 1}}}, 2)
	add, mul, err := c.WiringMLEs(0)
	if err != nil {
		t.Fatalf("WiringMLEs: %v", err)
	}
	// mA=0, m1=1, so both MLEs range over 2 variables (b,c).
	zero, one := field.Zero(), field.One()
	mulAt, err := mul.Evaluate([]field.Element{zero, one})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	wantOne := field.One()
	if !mulAt.Equal(&wantOne) {
		t.Errorf("mul_mle(0,1) = %v, want 1", mulAt)
	}
	addAt, err := add.Evaluate([]field.Element{zero, one})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !addAt.IsZero() {
		t.Errorf("add_mle(0,1) = %v, want 0 (no add gates)", addAt)
	}
}

func TestPadLayer(t *testing.T) {
	gates := []Gate{{Op: Add, Left: 0, Right: 1}, {Op: Mul, Left: 1, Right: 2}, {Op: Add, Left: 2, Right: 3}}
	padded := PadLayer(gates, 0)
	if len(padded) != 4 {
		t.Errorf("len(padded) = %d, want 4", len(padded))
	}
	if padded[3].Op != Add || padded[3].Left != 0 || padded[3].Right != 0 {
		t.Errorf("padding gate = %+v, want Add(0,0)", padded[3])
	}
}
