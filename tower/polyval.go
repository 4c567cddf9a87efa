// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import (
	"math/big"

	"github.com/HiddenAndBound/block-level-testing-pcs/underlier"
)

// Polyval128 is GF(2^128) with modulus x^128 + x^127 + x^126 + 1, held in
// Montgomery form throughout arithmetic (spec §3, §9 "Montgomery form").
// New performs the to-Montgomery conversion; Display-equivalent formatting
// and equality checks should go through FromMontgomery first.
type Polyval128 struct {
	v underlier.U128
}

// hexU128 parses a hex string (as many digits as needed, no 0x prefix) into
// a U128, used to load the exact 128-bit constants below without manually
// splitting each literal into hi/lo halves by hand.
func hexU128(hex string) underlier.U128 {
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("tower: invalid hex constant " + hex)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	lo := new(big.Int).Mod(v, mod).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return underlier.U128{Lo: lo, Hi: hi}
}

var polyvalOne = Polyval128{hexU128("c2000000000000000000000000000001")}

// montgomeryR2 is the constant R^2 used to move a raw value into Montgomery
// form: to_montgomery(v) = v * R^2 (computed as a polyval multiply).
var montgomeryR2 = Polyval128{hexU128("1e563df92ea7081b4563df92ea7081b5")}

// NewPolyval128 constructs a Montgomery-form element from a raw (non-
// Montgomery) 128-bit value, matching BinaryField128bPolyval::new.
func NewPolyval128(hi, lo uint64) Polyval128 {
	raw := Polyval128{underlier.U128{Lo: lo, Hi: hi}}
	return raw.toMontgomery()
}

func ZeroPolyval128() Polyval128 { return Polyval128{} }
func OnePolyval128() Polyval128  { return polyvalOne }

func (a Polyval128) IsZero() bool      { return a.v.IsZero() }
func (a Polyval128) Equal(b Polyval128) bool { return a.v == b.v }
func (a Polyval128) Add(b Polyval128) Polyval128 { return Polyval128{a.v.Xor(b.v)} }
func (a Polyval128) Sub(b Polyval128) Polyval128 { return a.Add(b) }
func (a Polyval128) Neg() Polyval128             { return a }

// toMontgomery multiplies by R^2, moving a raw value into Montgomery form.
func (a Polyval128) toMontgomery() Polyval128 { return a.mulRaw(montgomeryR2) }

// FromMontgomery multiplies by the raw value 1, the standard Montgomery
// REDC trick for leaving Montgomery form: (xR)(1)R^-1 = x.
func (a Polyval128) FromMontgomery() Polyval128 {
	return a.mulRaw(Polyval128{underlier.U128{Lo: 1}})
}

// Mul multiplies two Montgomery-form values, producing a Montgomery-form
// result (the Montgomery reduction folds the extra factor of R back out).
func (a Polyval128) Mul(b Polyval128) Polyval128 { return a.mulRaw(b) }

// mulRaw is the Montgomery multiply-and-reduce primitive itself: Karatsuba
// into three 64x64 clmul products, then the fixed XOR-and-shift reduction
// network (shifts 1,2,7,57,62,63) ported lane-for-lane from the SIMD
// `simd_montgomery_multiply` routine, operating on scalar uint64 "lanes"
// instead of two packed 64-bit SIMD lanes.
func (a Polyval128) mulRaw(b Polyval128) Polyval128 {
	h0, h1 := a.v.Lo, a.v.Hi
	y0, y1 := b.v.Lo, b.v.Hi

	t0hi, t0lo := clmul64(y0, h0)
	t1hi, t1lo := clmul64(y1, h1)
	t2hi, t2lo := clmul64(y0^y1, h0^h1)
	t2lo ^= t0lo ^ t1lo
	t2hi ^= t0hi ^ t1hi

	// Each SIMD lane below evolves independently (shifts never cross
	// lanes), so only the two "low" lanes that eventually feed the
	// unpacklo_epi64 result need to be carried through the reduction.
	v0lo := t0lo
	v1lo := t0hi ^ t2lo
	v2lo := t1lo ^ t2hi
	v3lo := t1hi

	v2lo ^= v0lo ^ (v0lo >> 1) ^ (v0lo >> 2) ^ (v0lo >> 7)
	v1lo ^= (v0lo << 63) ^ (v0lo << 62) ^ (v0lo << 57)
	v3lo ^= v1lo ^ (v1lo >> 1) ^ (v1lo >> 2) ^ (v1lo >> 7)
	v2lo ^= (v1lo << 63) ^ (v1lo << 62) ^ (v1lo << 57)

	return Polyval128{underlier.U128{Lo: v2lo, Hi: v3lo}}
}

// Square returns a*a (ReuseMultiplyStrategy per spec §4.C).
func (a Polyval128) Square() Polyval128 { return a.Mul(a) }

// InvertOrZero computes a^-1 via Fermat's little theorem over GF(2^128),
// 0 maps to 0.
func (a Polyval128) InvertOrZero() Polyval128 {
	if a.IsZero() {
		return a
	}
	result := polyvalOne
	base := a
	for i := 0; i < 127; i++ {
		base = base.Square()
		result = result.Mul(base)
	}
	return result
}

// Bytes16 encodes a's Montgomery-form representation, little-endian, per
// spec §6 ("polyval values are in Montgomery form" on the wire).
func (a Polyval128) Bytes16() [16]byte { return a.v.Bytes16() }

func Polyval128FromBytes16(b [16]byte) Polyval128 {
	return Polyval128{underlier.U128FromBytes16(b)}
}
