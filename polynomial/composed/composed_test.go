package composed

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
	"github.com/giuliop/gkrzk/polynomial/multilinear"
)

func mle(vs ...uint64) *multilinear.Poly {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = field.NewFromUint64(v)
	}
	p, err := multilinear.New(out)
	if err != nil {
		panic(err)
	}
	return p
}

func TestProductDegreeAndEvaluate(t *testing.T) {
	a := mle(1, 2, 3, 4)
	b := mle(5, 6, 7, 8)
	prod, err := NewProduct([]*multilinear.Poly{a, b})
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	if prod.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", prod.Degree())
	}
	r := []field.Element{field.NewFromUint64(3), field.NewFromUint64(5)}
	got, err := prod.Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	av, _ := a.Evaluate(r)
	bv, _ := b.Evaluate(r)
	var want field.Element
	want.Mul(&av, &bv)
	if !got.Equal(&want) {
		t.Errorf("product.Evaluate = %v, want %v", got, want)
	}
}

func TestSumOfProducts(t *testing.T) {
	a := mle(1, 2, 3, 4)
	b := mle(5, 6, 7, 8)
	c := mle(1, 1, 1, 1)

	p1, _ := NewProduct([]*multilinear.Poly{a, b})
	p2, _ := NewProduct([]*multilinear.Poly{c})
	sum, err := NewSum([]Poly{p1, p2})
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}
	if sum.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", sum.Degree())
	}

	r := []field.Element{field.NewFromUint64(2), field.NewFromUint64(4)}
	got, err := sum.Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	p1v, _ := p1.Evaluate(r)
	p2v, _ := p2.Evaluate(r)
	var want field.Element
	want.Add(&p1v, &p2v)
	if !got.Equal(&want) {
		t.Errorf("sum.Evaluate = %v, want %v", got, want)
	}
}

func TestPartialEvaluatePropagates(t *testing.T) {
	a := mle(1, 2, 3, 4)
	b := mle(5, 6, 7, 8)
	prod, _ := NewProduct([]*multilinear.Poly{a, b})

	r := field.NewFromUint64(9)
	partial, err := prod.PartialEvaluate(0, r)
	if err != nil {
		t.Fatalf("PartialEvaluate: %v", err)
	}
	if partial.NVars() != 1 {
		t.Errorf("NVars() after partial evaluate = %d, want 1", partial.NVars())
	}
	rest := field.NewFromUint64(3)
	got, err := partial.Evaluate([]field.Element{rest})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	full := []field.Element{r, rest}
	want, err := prod.Evaluate(full)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !got.Equal(&want) {
		t.Errorf("partial then evaluate disagreed with full evaluate: got %v want %v", got, want)
	}
}
