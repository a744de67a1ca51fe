package fibonacci

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
)

func TestInterpolateReproducesSamples(t *testing.T) {
	p, err := Interpolate()
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for _, pt := range Points() {
		got := p.Evaluate(pt.X)
		if !got.Equal(&pt.Y) {
			t.Errorf("p(%v) = %v, want %v", pt.X, got, pt.Y)
		}
	}
}

func TestPredictNext(t *testing.T) {
	got, err := PredictNext()
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	want := field.NewFromUint64(13)
	if !got.Equal(&want) {
		t.Errorf("PredictNext() = %v, want 13", got)
	}
}
