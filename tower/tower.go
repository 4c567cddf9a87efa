// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tower implements the binary tower field hierarchy T0..T7 and the
// GF(2^128) sibling used alongside it, the polyval (Montgomery) field. No
// AES-basis field is provided.
//
// Every level is built by the same recursive construction, generalized from
// the teacher corpus's per-width macro expansion into one pair of functions
// parameterized by bit width (mulWidth/mulAlphaWidth), plus one dedicated
// 128-bit implementation (tower128.go) for the level that no longer fits a
// uint64.
package tower

import "errors"

// ErrExtensionDegreeMismatch is returned by basis/from_bases when the index
// or bit count exceeds a field's degree over T0.
var ErrExtensionDegreeMismatch = errors.New("tower: extension degree mismatch")

// mulWidth multiplies two tower elements of the given bit width, each
// represented in the low `width` bits of a uint64. It implements the
// recursive Karatsuba-style tower multiply: at width 1 (T0 = GF(2)) the
// product is a bitwise AND; otherwise the element splits into two
// half-width halves and combines via the level's distinguished element.
func mulWidth(a, b uint64, width uint) uint64 {
	if width == 1 {
		return a & b
	}
	half := width / 2
	mask := uint64(1)<<half - 1
	a0, a1 := a&mask, a>>half
	b0, b1 := b&mask, b>>half

	z0 := mulWidth(a0, b0, half)
	z1 := mulWidth(a1, b1, half)
	lo := z0 ^ z1
	mid := mulWidth(a0^a1, b0^b1, half)
	hi := mid ^ lo ^ mulAlphaWidth(z1, half)
	return lo | (hi << half)
}

// mulAlphaWidth multiplies a tower element by the level's distinguished
// element alpha_k, a cheap linear operation per spec §4.B/GLOSSARY.
func mulAlphaWidth(a uint64, width uint) uint64 {
	if width == 1 {
		// T0 has no alpha of its own; this is only ever reached as the
		// innermost recursive step, where it supplies alpha_0 = 1.
		return a
	}
	half := width / 2
	mask := uint64(1)<<half - 1
	a0, a1 := a&mask, a>>half
	t1 := mulAlphaWidth(a1, half)
	hi := a0 ^ t1
	return a1 | (hi << half)
}

// squareWidth squares a tower element; per spec §4.C's ReuseMultiplyStrategy
// this is simply self * self.
func squareWidth(a uint64, width uint) uint64 {
	return mulWidth(a, a, width)
}

// invertWidth computes a^-1 via Fermat's little theorem over GF(2^width):
// a^(2^width - 2), implemented with repeated squaring and accumulation.
// Returns 0 for a == 0 (invert_or_zero semantics, spec §4.B).
func invertWidth(a uint64, width uint) uint64 {
	if a == 0 {
		return 0
	}
	result := uint64(1)
	base := a
	// a^(2^width - 2) = product over bit i in [1, width) of base^(2^i)
	for i := uint(1); i < width; i++ {
		base = squareWidth(base, width)
		result = mulWidth(result, base, width)
	}
	return result
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}
