// Package circuit models a layered arithmetic circuit of ADD and MUL gates:
// an ordered list of layers, index 0 at the output, each gate wired to two
// positions in the layer directly below it. The bottom of the last layer is
// the public input.
package circuit

import (
	"errors"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/multilinear"
)

// ErrShapeMismatch is returned when an input length, layer width or gate
// wiring index is inconsistent with the circuit's declared shape.
var ErrShapeMismatch = errors.New("circuit: shape mismatch")

// GateOp is the operation a Gate performs on its two operands.
type GateOp int

const (
	Add GateOp = iota
	Mul
)

// Gate wires one output position to two positions in the layer below.
type Gate struct {
	Op          GateOp
	Left, Right int
}

// Layer is an ordered list of gates; position i in the layer is the i-th
// gate. len(Layer) must be a power of two.
type Layer []Gate

// Circuit is an ordered list of layers, Layers[0] at the output and
// Layers[len(Layers)-1] directly above the input. InputWidth is the width of
// the public input vector feeding the bottom layer.
type Circuit struct {
	Layers     []Layer
	InputWidth int
}

// NewCircuit validates that every layer width and the input width are
// powers of two and that every gate's operand indices are in range.
func NewCircuit(layers []Layer, inputWidth int) (*Circuit, error) {
	c := &Circuit{Layers: layers, InputWidth: inputWidth}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the circuit-shape invariant without evaluating anything.
func (c *Circuit) Validate() error {
	if _, ok := log2(c.InputWidth); !ok {
		return ErrShapeMismatch
	}
	for l, layer := range c.Layers {
		if _, ok := log2(len(layer)); !ok {
			return ErrShapeMismatch
		}
		below := c.widthBelow(l)
		for _, g := range layer {
			if g.Left < 0 || g.Left >= below || g.Right < 0 || g.Right >= below {
				return ErrShapeMismatch
			}
		}
	}
	return nil
}

// Depth returns the number of gate layers, d in the W_0..W_d layer chain.
func (c *Circuit) Depth() int { return len(c.Layers) }

// widthBelow returns the width of the layer directly below layer l (the
// input width, if l is the last gate layer).
func (c *Circuit) widthBelow(l int) int {
	if l+1 < len(c.Layers) {
		return len(c.Layers[l+1])
	}
	return c.InputWidth
}

// WidthBelow exposes widthBelow for callers (the GKR protocol layer) that
// need the layer-below width without rebuilding it from the gate list.
func (c *Circuit) WidthBelow(l int) int { return c.widthBelow(l) }

// LayerVars returns (m_l, m_{l+1}), the bit-widths of layer l's own width
// and the width of the layer directly below it.
func (c *Circuit) LayerVars(l int) (mL, mBelow int, err error) {
	if l < 0 || l >= len(c.Layers) {
		return 0, 0, ErrShapeMismatch
	}
	mL, ok := log2(len(c.Layers[l]))
	if !ok {
		return 0, 0, ErrShapeMismatch
	}
	mBelow, ok = log2(c.widthBelow(l))
	if !ok {
		return 0, 0, ErrShapeMismatch
	}
	return mL, mBelow, nil
}

// Log2 exposes log2 for callers needing a layer-width's bit count.
func Log2(n int) (int, bool) { return log2(n) }

// Evaluate produces the full trace W_0..W_d with W_d = input, filling
// upward layer by layer. It fails with ErrShapeMismatch if input's length
// does not match InputWidth.
func (c *Circuit) Evaluate(input []field.Element) ([][]field.Element, error) {
	if len(input) != c.InputWidth {
		return nil, ErrShapeMismatch
	}
	d := len(c.Layers)
	trace := make([][]field.Element, d+1)
	trace[d] = append([]field.Element(nil), input...)

	for l := d - 1; l >= 0; l-- {
		below := trace[l+1]
		out := make([]field.Element, len(c.Layers[l]))
		for i, g := range c.Layers[l] {
			if g.Left >= len(below) || g.Right >= len(below) {
				return nil, ErrShapeMismatch
			}
			switch g.Op {
			case Add:
				out[i].Add(&below[g.Left], &below[g.Right])
			case Mul:
				out[i].Mul(&below[g.Left], &below[g.Right])
			default:
				return nil, ErrShapeMismatch
			}
		}
		trace[l] = out
	}
	return trace, nil
}

// LayerMLE returns the multilinear extension of trace[l], indexed by the
// b_l bits of its width.
func LayerMLE(trace [][]field.Element, l int) (*multilinear.Poly, error) {
	if l < 0 || l >= len(trace) {
		return nil, ErrShapeMismatch
	}
	return multilinear.New(trace[l])
}

// WiringMLEs builds the add and mul wiring multilinear extensions of layer
// l, scanning its gates and setting the single hypercube entry
// (a, left_idx, right_idx) to 1. The returned MLEs
// range over m_l + 2*m_{l+1} variables, a laid out as the most-significant
// bits followed by left then right, matching the variable-0-is-MSB
// convention used throughout.
func (c *Circuit) WiringMLEs(l int) (add, mul *multilinear.Poly, err error) {
	if l < 0 || l >= len(c.Layers) {
		return nil, nil, ErrShapeMismatch
	}
	mA, ok := log2(len(c.Layers[l]))
	if !ok {
		return nil, nil, ErrShapeMismatch
	}
	m1, ok := log2(c.widthBelow(l))
	if !ok {
		return nil, nil, ErrShapeMismatch
	}
	size := 1 << uint(mA+2*m1)
	addEvals := make([]field.Element, size)
	mulEvals := make([]field.Element, size)
	one := field.One()
	for a, g := range c.Layers[l] {
		idx := (a << uint(2*m1)) | (g.Left << uint(m1)) | g.Right
		switch g.Op {
		case Add:
			addEvals[idx] = one
		case Mul:
			mulEvals[idx] = one
		}
	}
	add, err = multilinear.New(addEvals)
	if err != nil {
		return nil, nil, err
	}
	mul, err = multilinear.New(mulEvals)
	if err != nil {
		return nil, nil, err
	}
	return add, mul, nil
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

// PadWidth returns the next power of two >= n (1 if n <= 1), the target
// width PadLayer pads a gate list to.
func PadWidth(n int) int {
	if n <= 1 {
		return 1
	}
	w := 1
	for w < n {
		w <<= 1
	}
	return w
}

// PadLayer pads gates up to PadWidth(len(gates)) with ADD gates that sum
// zeroIdx with itself, so the padded positions evaluate to zero as long as
// the layer below's position zeroIdx is itself always zero. This reserves
// an always-zero position and wires every padding gate to it, handling
// non-power-of-two circuit widths.
func PadLayer(gates []Gate, zeroIdx int) Layer {
	target := PadWidth(len(gates))
	out := make(Layer, target)
	copy(out, gates)
	for i := len(gates); i < target; i++ {
		out[i] = Gate{Op: Add, Left: zeroIdx, Right: zeroIdx}
	}
	return out
}
