// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import "github.com/HiddenAndBound/block-level-testing-pcs/underlier"

// T128 is the 128-bit tower scalar (level 7), the "large field" scalars of
// spec §3 (evaluation points, folded_poly coordinates). It no longer fits a
// uint64, so its multiply recombines two 64-bit (T6-width) halves through
// one application of the same Karatsuba step mulWidth/mulAlphaWidth use at
// every smaller level.
type T128 struct {
	v underlier.U128
}

func NewT128(hi, lo uint64) T128 { return T128{underlier.U128{Lo: lo, Hi: hi}} }
func T128FromU128(v underlier.U128) T128 { return T128{v} }

func ZeroT128() T128 { return T128{} }
func OneT128() T128  { return NewT128(0, 1) }

func (a T128) Val() underlier.U128 { return a.v }
func (a T128) IsZero() bool        { return a.v.IsZero() }
func (a T128) Equal(b T128) bool   { return a.v == b.v }
func (a T128) Add(b T128) T128     { return T128{a.v.Xor(b.v)} }
func (a T128) Sub(b T128) T128     { return a.Add(b) }
func (a T128) Neg() T128           { return a }

func (a T128) Mul(b T128) T128 {
	const half = 64
	a0, a1, b0, b1 := a.v.Lo, a.v.Hi, b.v.Lo, b.v.Hi

	z0 := mulWidth(a0, b0, half)
	z1 := mulWidth(a1, b1, half)
	lo := z0 ^ z1
	mid := mulWidth(a0^a1, b0^b1, half)
	hi := mid ^ lo ^ mulAlphaWidth(z1, half)
	return T128{underlier.U128{Lo: lo, Hi: hi}}
}

func (a T128) Square() T128 { return a.Mul(a) }

func (a T128) MulAlpha() T128 {
	const half = 64
	a0, a1 := a.v.Lo, a.v.Hi
	t1 := mulAlphaWidth(a1, half)
	hi := a0 ^ t1
	return T128{underlier.U128{Lo: a1, Hi: hi}}
}

// InvertOrZero computes a^-1 via Fermat's little theorem over GF(2^128):
// a^(2^128 - 2), 0 maps to 0.
func (a T128) InvertOrZero() T128 {
	if a.IsZero() {
		return a
	}
	result := OneT128()
	base := a
	for i := 0; i < 127; i++ {
		base = base.Square()
		result = result.Mul(base)
	}
	return result
}

// Basis128 returns the i-th basis element of T128 over T0: 1<<i.
func Basis128(i int) (T128, error) {
	if i < 0 || i >= 128 {
		return T128{}, ErrExtensionDegreeMismatch
	}
	if i < 64 {
		return NewT128(0, 1<<uint(i)), nil
	}
	return NewT128(1<<uint(i-64), 0), nil
}

// Bytes16 encodes a in the little-endian wire format mandated by spec §6.
func (a T128) Bytes16() [16]byte { return a.v.Bytes16() }

func T128FromBytes16(b [16]byte) T128 { return T128{underlier.U128FromBytes16(b)} }
