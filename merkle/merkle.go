// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package merkle implements the Keccak-based binary Merkle commitment
// over column hashes (spec §2 component F), with single-leaf membership
// proofs.
package merkle

import (
	"errors"

	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// DigestLength is the fixed digest width, 32 bytes (spec §6).
const DigestLength = 32

// Digest is a 32-byte Merkle node/leaf hash.
type Digest [DigestLength]byte

// ErrNotPowerOfTwo is returned when a tree is built over a non-power-of-
// two leaf count (spec §7 "Invariant violation").
var ErrNotPowerOfTwo = errors.New("merkle: leaf count must be a power of two")

// ErrIndexOutOfRange is returned by Path for an out-of-range leaf index.
var ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")

// Hasher abstracts the hash primitive a tree is built over. The wire
// format mandates Keccak256 (spec §6); Blake3Hasher is wired as a faster
// alternate for non-wire-compatible / local testing use, grounded on the
// teacher's own blake3 Merkle root helper.
type Hasher interface {
	Hash(data []byte) Digest
	HashPair(left, right Digest) Digest
}

type keccak256Hasher struct{}

// Keccak256Hasher is the wire-mandated hash (spec §6 "Hash digest").
var Keccak256Hasher Hasher = keccak256Hasher{}

func (keccak256Hasher) Hash(data []byte) Digest {
	var out Digest
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

func (keccak256Hasher) HashPair(left, right Digest) Digest {
	var buf [2 * DigestLength]byte
	copy(buf[:DigestLength], left[:])
	copy(buf[DigestLength:], right[:])
	var out Digest
	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	h.Sum(out[:0])
	return out
}

type blake3Hasher struct{}

// Blake3Hasher is an alternate, non-wire-mandated hasher for local/dev
// use where Keccak compatibility is not required.
var Blake3Hasher Hasher = blake3Hasher{}

func (blake3Hasher) Hash(data []byte) Digest {
	var out Digest
	sum := blake3.Sum256(data)
	copy(out[:], sum[:])
	return out
}

func (blake3Hasher) HashPair(left, right Digest) Digest {
	var buf [2 * DigestLength]byte
	copy(buf[:DigestLength], left[:])
	copy(buf[DigestLength:], right[:])
	return blake3Hasher{}.Hash(buf[:])
}

// LeafData encodes a column's rows entries as the little-endian 4-byte
// concatenation the wire format mandates (spec §6 "Leaf hash input").
func LeafData(col []tower.T5) []byte {
	out := make([]byte, 0, 4*len(col))
	for _, v := range col {
		b := v.Bytes4()
		out = append(out, b[:]...)
	}
	return out
}

// Tree is a dense, complete binary Merkle tree (spec §3 "Merkle tree"):
// layer 0 is the root, layer depth holds the leaves.
type Tree struct {
	hasher Hasher
	depth  int
	layers [][]Digest // layers[0] = root ... layers[depth] = leaves
}

// Build constructs a tree over the given leaf digests, which must number
// a power of two.
func Build(hasher Hasher, leaves []Digest) (*Tree, error) {
	n := len(leaves)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	depth := 0
	for (1 << uint(depth)) < n {
		depth++
	}

	layers := make([][]Digest, depth+1)
	layers[depth] = append([]Digest(nil), leaves...)
	for d := depth - 1; d >= 0; d-- {
		prev := layers[d+1]
		cur := make([]Digest, len(prev)/2)
		for i := range cur {
			cur[i] = hasher.HashPair(prev[2*i], prev[2*i+1])
		}
		layers[d] = cur
	}

	return &Tree{hasher: hasher, depth: depth, layers: layers}, nil
}

// Root returns the tree's single root digest.
func (t *Tree) Root() Digest { return t.layers[0][0] }

// Depth returns the number of levels between leaves and root.
func (t *Tree) Depth() int { return t.depth }

// Path returns the sibling digest at each depth from the leaves up to
// (not including) the root, in leaf-to-root order (spec §4.F "path(i)").
func (t *Tree) Path(i int) ([]Digest, error) {
	if i < 0 || i >= len(t.layers[t.depth]) {
		return nil, ErrIndexOutOfRange
	}
	path := make([]Digest, t.depth)
	idx := i
	for d := t.depth; d > 0; d-- {
		sibling := idx ^ 1
		path[t.depth-d] = t.layers[d][sibling]
		idx >>= 1
	}
	return path, nil
}

// VerifyPath reconstructs the root from a leaf digest and its sibling
// path and checks it against root (spec §4.F "verify_path"): at depth d,
// bit d of i selects which side the accumulator occupies.
func VerifyPath(hasher Hasher, root, leafDigest Digest, i int, path []Digest) bool {
	acc := leafDigest
	for d, sibling := range path {
		if (i>>uint(d))&1 == 0 {
			acc = hasher.HashPair(acc, sibling)
		} else {
			acc = hasher.HashPair(sibling, acc)
		}
	}
	return acc == root
}
