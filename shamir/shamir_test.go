package shamir

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
)

// TestThreeOfFiveScenario: threshold 3 of 5 over a random secret; any 3
// shares reconstruct it.
func TestThreeOfFiveScenario(t *testing.T) {
	secret, err := field.Random(nil)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	shares, err := Split(secret, 5, 3, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("len(shares) = %d, want 5", len(shares))
	}

	subsets := [][]int{{0, 1, 2}, {0, 2, 4}, {1, 3, 4}}
	for _, idxs := range subsets {
		subset := make([]Share, len(idxs))
		for i, idx := range idxs {
			subset[i] = shares[idx]
		}
		got, err := Combine(subset)
		if err != nil {
			t.Fatalf("Combine: %v", err)
		}
		if !got.Equal(&secret) {
			t.Errorf("Combine(%v) = %v, want %v", idxs, got, secret)
		}
	}
}

// TestTwoSharesInsufficient confirms reconstructing from only 2 of the 3
// points needed for a degree-2 polynomial does not uniquely determine it.
func TestTwoSharesInsufficient(t *testing.T) {
	secret, err := field.Random(nil)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	shares, err := Split(secret, 5, 3, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	// Combine requires >= 2 shares but a degree-2 polynomial needs 3 points;
	// interpolating through only 2 yields the wrong (degree-1) reconstruction.
	got, err := Combine(shares[:2])
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if got.Equal(&secret) {
		t.Errorf("2 shares of a threshold-3 scheme coincidentally reconstructed the secret")
	}
}

func TestDuplicateShareRejected(t *testing.T) {
	x := field.NewFromUint64(1)
	shares := []Share{{X: x, Y: field.NewFromUint64(5)}, {X: x, Y: field.NewFromUint64(7)}}
	if _, err := Combine(shares); err != ErrDuplicateShare {
		t.Errorf("Combine with duplicate x = %v, want ErrDuplicateShare", err)
	}
}

func TestSplitRejectsLowThreshold(t *testing.T) {
	if _, err := Split(field.One(), 5, 1, nil); err != ErrThresholdTooLow {
		t.Errorf("Split with threshold=1 = %v, want ErrThresholdTooLow", err)
	}
}
