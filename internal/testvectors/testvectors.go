// Package testvectors holds small worked circuit examples for tests, so the
// scenario numbers are defined once instead of being retyped per test. The
// gkr/protocol tests use it; gkr/circuit's tests cannot import it, since this
// package imports gkr/circuit.
package testvectors

import (
	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/gkr/circuit"
)

// MulGateCircuit returns the 2-layer circuit g = x0*x1 and its input
// [3, 4], which evaluates to the single output 12.
func MulGateCircuit() (*circuit.Circuit, []field.Element, error) {
	c, err := circuit.NewCircuit([]circuit.Layer{
		{{Op: circuit.Mul, Left: 0, Right: 1}},
	}, 2)
	if err != nil {
		return nil, nil, err
	}
	input := []field.Element{field.NewFromUint64(3), field.NewFromUint64(4)}
	return c, input, nil
}

// DeepCircuit returns a 3-layer circuit (two mul gates feeding one add
// gate) over four input values, used to exercise GKR across more than one
// layer reduction.
func DeepCircuit() (*circuit.Circuit, []field.Element, error) {
	c, err := circuit.NewCircuit([]circuit.Layer{
		{{Op: circuit.Add, Left: 0, Right: 1}},
		{{Op: circuit.Mul, Left: 0, Right: 1}, {Op: circuit.Mul, Left: 2, Right: 3}},
	}, 4)
	if err != nil {
		return nil, nil, err
	}
	input := []field.Element{
		field.NewFromUint64(2), field.NewFromUint64(3),
		field.NewFromUint64(5), field.NewFromUint64(7),
	}
	return c, input, nil
}
