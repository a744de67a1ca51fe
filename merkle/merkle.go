// Package merkle is a standalone leaf-commitment collaborator: a binary
// Merkle tree over field-element leaves for committing to a vector without
// the full machinery of KZG. No other package of the module uses it, and it
// is not on the soundness-critical path of sum-check, GKR or KZG.
package merkle

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/giuliop/gkrzk/field"
)

// ErrEmptyLeaves is returned by Commit when given no leaves.
var ErrEmptyLeaves = errors.New("merkle: at least one leaf is required")

// ErrIndexOutOfRange is returned by Prove for an invalid leaf index.
var ErrIndexOutOfRange = errors.New("merkle: index out of range")

const hashLen = 32

// Tree is a binary Merkle tree over field-element leaves, padded up to the
// next power of two by duplicating the final leaf.
type Tree struct {
	levels [][][hashLen]byte // levels[0] = leaf hashes, levels[len-1] = [root]
}

// Commit hashes every leaf, pads to a power of two, and builds the tree
// bottom-up, returning the root.
func Commit(leaves []field.Element) (Tree, [hashLen]byte, error) {
	if len(leaves) == 0 {
		return Tree{}, [hashLen]byte{}, ErrEmptyLeaves
	}
	level := make([][hashLen]byte, len(leaves))
	for i, l := range leaves {
		level[i] = hashLeaf(l)
	}
	for len(level)&(len(level)-1) != 0 {
		level = append(level, level[len(level)-1])
	}

	levels := [][][hashLen]byte{level}
	for len(level) > 1 {
		next := make([][hashLen]byte, len(level)/2)
		for i := range next {
			next[i] = hashPair(level[2*i], level[2*i+1])
		}
		levels = append(levels, next)
		level = next
	}
	return Tree{levels: levels}, levels[len(levels)-1][0], nil
}

// Path is an authentication path from a leaf to the root: one sibling hash
// per level, bottom-up.
type Path struct {
	Siblings [][hashLen]byte
	Index    int
}

// Prove returns the authentication path for the leaf at index (in the
// original, pre-padding leaf ordering).
func (t Tree) Prove(index int) (Path, error) {
	if len(t.levels) == 0 || index < 0 || index >= len(t.levels[0]) {
		return Path{}, ErrIndexOutOfRange
	}
	siblings := make([][hashLen]byte, 0, len(t.levels)-1)
	idx := index
	for l := 0; l < len(t.levels)-1; l++ {
		level := t.levels[l]
		sibIdx := idx ^ 1
		siblings = append(siblings, level[sibIdx])
		idx /= 2
	}
	return Path{Siblings: siblings, Index: index}, nil
}

// Verify recomputes the root from leaf and path and checks it against root.
func Verify(root [hashLen]byte, leaf field.Element, path Path) bool {
	cur := hashLeaf(leaf)
	idx := path.Index
	for _, sib := range path.Siblings {
		if idx%2 == 0 {
			cur = hashPair(cur, sib)
		} else {
			cur = hashPair(sib, cur)
		}
		idx /= 2
	}
	return cur == root
}

// hashLeaf hashes a single field element's canonical encoding.
func hashLeaf(e field.Element) [hashLen]byte {
	b := field.Bytes(e)
	var out [hashLen]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(b[:])
	h.Sum(out[:0])
	return out
}

// hashPair hashes the big-endian concatenation of two child hashes.
func hashPair(left, right [hashLen]byte) [hashLen]byte {
	var out [hashLen]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(left[:])
	h.Write(right[:])
	h.Sum(out[:0])
	return out
}
