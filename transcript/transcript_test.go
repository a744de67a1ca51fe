package transcript

import (
	"testing"

	"github.com/giuliop/gkrzk/field"
)

// TestDeterminism: append(label="x",
// bytes=0x01), challenge = c1; append(field element c1), challenge = c2;
// repeating the sequence in a fresh transcript yields identical (c1, c2).
func TestDeterminism(t *testing.T) {
	run := func() (c1, c2 field.Element) {
		tr := New([]byte("x"))
		tr.Append([]byte{0x01})
		a := tr.Challenge()
		tr.AppendField(a)
		b := tr.Challenge()
		return a, b
	}

	c1a, c2a := run()
	c1b, c2b := run()
	if !c1a.Equal(&c1b) || !c2a.Equal(&c2b) {
		t.Errorf("two identical transcripts diverged: (%v,%v) vs (%v,%v)", c1a, c2a, c1b, c2b)
	}
}

func TestConsecutiveChallengesDiffer(t *testing.T) {
	tr := New(nil)
	a := tr.Challenge()
	b := tr.Challenge()
	if a.Equal(&b) {
		t.Errorf("two consecutive challenges with no intervening append should differ")
	}
}

func TestDivergentAppendsDivergeChallenges(t *testing.T) {
	tr1 := New([]byte("a"))
	tr2 := New([]byte("b"))
	c1 := tr1.Challenge()
	c2 := tr2.Challenge()
	if c1.Equal(&c2) {
		t.Errorf("transcripts with different labels produced the same challenge")
	}
}
