// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

// Element is a tower field value at any of the native-width levels T0..T6
// (widths 1,2,4,8,16,32,64 bits), carrying its width alongside the raw
// value. Per the design note in spec §9, the source's one-macro-expansion-
// per-(underlier,scalar)-pair code collapses here into a single
// parameterized type rather than seven near-identical named types.
type Element struct {
	val   uint64
	width uint
}

// NewElement constructs a tower element of the given bit width (must be one
// of 1,2,4,8,16,32,64), masking v to that width.
func NewElement(width uint, v uint64) Element {
	return Element{val: v & mask(width), width: width}
}

func (a Element) Width() uint   { return a.width }
func (a Element) Val() uint64   { return a.val }
func (a Element) IsZero() bool  { return a.val == 0 }
func (a Element) Equal(b Element) bool {
	return a.width == b.width && a.val == b.val
}

func (a Element) Add(b Element) Element      { return Element{a.val ^ b.val, a.width} }
func (a Element) Sub(b Element) Element      { return a.Add(b) }
func (a Element) Neg() Element               { return a }
func (a Element) Mul(b Element) Element      { return Element{mulWidth(a.val, b.val, a.width), a.width} }
func (a Element) Square() Element            { return Element{squareWidth(a.val, a.width), a.width} }
func (a Element) InvertOrZero() Element      { return Element{invertWidth(a.val, a.width), a.width} }
func (a Element) MulAlpha() Element          { return Element{mulAlphaWidth(a.val, a.width), a.width} }

// Basis returns the i-th basis element of a width-`width` tower field over
// T0: the standard basis is the tower's own bit positions, so basis(i) is
// simply 1<<i.
func Basis(width uint, i int) (Element, error) {
	if i < 0 || uint(i) >= width {
		return Element{}, ErrExtensionDegreeMismatch
	}
	return NewElement(width, 1<<uint(i)), nil
}

// FromBases reconstructs an element from its bit decomposition over T0,
// least-significant basis element first.
func FromBases(width uint, bits []bool) (Element, error) {
	if uint(len(bits)) > width {
		return Element{}, ErrExtensionDegreeMismatch
	}
	var v uint64
	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}
	return NewElement(width, v), nil
}

// T5 is the 32-bit tower scalar: the code-matrix entry type (spec §3 "Code
// matrix") and the base type every packed-32 folding operation combines.
type T5 struct{ e Element }

func NewT5(v uint32) T5       { return T5{NewElement(32, uint64(v))} }
func ZeroT5() T5              { return NewT5(0) }
func OneT5() T5                { return NewT5(1) }
func (a T5) Val() uint32      { return uint32(a.e.val) }
func (a T5) Add(b T5) T5      { return T5{a.e.Add(b.e)} }
func (a T5) Sub(b T5) T5      { return a.Add(b) }
func (a T5) Mul(b T5) T5      { return T5{a.e.Mul(b.e)} }
func (a T5) Square() T5       { return T5{a.e.Square()} }
func (a T5) InvertOrZero() T5 { return T5{a.e.InvertOrZero()} }
func (a T5) MulAlpha() T5     { return T5{a.e.MulAlpha()} }
func (a T5) Neg() T5          { return a }
func (a T5) IsZero() bool     { return a.e.IsZero() }
func (a T5) Equal(b T5) bool  { return a.e.Equal(b.e) }

// BasisT5 returns the i-th basis element of T5 over T0, i.e. 1<<i.
func BasisT5(i int) (T5, error) {
	e, err := Basis(32, i)
	if err != nil {
		return T5{}, err
	}
	return T5{e}, nil
}

// Bytes4 encodes a in the little-endian wire format mandated by spec §6.
func (a T5) Bytes4() [4]byte {
	v := a.Val()
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func T5FromBytes4(b [4]byte) T5 {
	return NewT5(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

// MulT5 is Mul under the name the additive NTT's generic coefficient
// contract expects ("F + F*T5 -> F", spec §4.D): for F = T5 itself this
// is ordinary field multiplication.
func (a T5) MulT5(b T5) T5 { return a.Mul(b) }

// ToT128 embeds a T5 into T128 via the tower's natural subfield inclusion
// (T5 occupies the low 32 bits, high bits zero): the tower construction
// nests T0 < T1 < ... < T7 with each level's bit pattern a prefix of the
// next, so embedding is a zero-extend.
func (a T5) ToT128() T128 { return NewT128(0, uint64(a.Val())) }
