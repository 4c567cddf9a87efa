// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package packed implements the packed field P<U,S> of spec §3/§4.C: a
// value holding WIDTH lanes of a scalar field S side by side, with every
// arithmetic operator lane-wise.
//
// The source generates one packed type per (underlier, scalar) pair by
// macro expansion and picks among four SIMD multiplication strategies
// depending on hardware intrinsics (spec §4.C, §9 "Dispatch by target
// capability"). Go has no portable access to that bit layout or to
// hardware carry-less/SIMD intrinsics, so this package collapses the
// whole family into one generic lane-vector type, Packed[T], and
// realizes PairwiseStrategy directly: lane-by-lane scalar operations,
// "used when lane width equals underlier width or as fallback" per
// §4.C - the fallback is the only strategy a portable Go host can
// always provide. The contract every concrete packed type owes -
// lane-wise correctness against the scalar operation - is what this
// type enforces regardless of storage layout.
package packed

import "errors"

// ErrLaneMismatch is returned by Interleave when its two inputs differ in
// width. The lane-wise operators (Add, Mul, ...) do not check widths.
var ErrLaneMismatch = errors.New("packed: lane count mismatch")

// ErrBlockTooWide is returned by Interleave when log_block is not
// strictly less than log2(width), i.e. the block would not fit twice
// into the vector (spec §4.A: "interleave with log_block_len >= LOG_WIDTH"
// is an invariant violation).
var ErrBlockTooWide = errors.New("packed: block width exceeds half the lane count")

// Scalar is the operation set every lane type (tower.Element family,
// tower.T128, tower.T5) implements. tower.Polyval128 has no MulAlpha and
// so does not satisfy it.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Square() T
	InvertOrZero() T
	MulAlpha() T
	Neg() T
	IsZero() bool
	Equal(T) bool
}

// Packed is P<U,S>: WIDTH lanes of scalar S. WIDTH is len(p) and must be
// a power of two for Interleave to apply.
type Packed[T Scalar[T]] []T

// FromFn builds a packed value with lane i set to f(i).
func FromFn[T Scalar[T]](width int, f func(int) T) Packed[T] {
	p := make(Packed[T], width)
	for i := range p {
		p[i] = f(i)
	}
	return p
}

// Broadcast fills every lane with v.
func Broadcast[T Scalar[T]](width int, v T) Packed[T] {
	return FromFn(width, func(int) T { return v })
}

func (p Packed[T]) Width() int { return len(p) }
func (p Packed[T]) Get(i int) T { return p[i] }

// Set returns a copy of p with lane i replaced by v, leaving all other
// lanes unchanged.
func (p Packed[T]) Set(i int, v T) Packed[T] {
	out := make(Packed[T], len(p))
	copy(out, p)
	out[i] = v
	return out
}

func zipWith[T Scalar[T]](a, b Packed[T], f func(x, y T) T) Packed[T] {
	out := make(Packed[T], len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func mapWith[T Scalar[T]](a Packed[T], f func(T) T) Packed[T] {
	out := make(Packed[T], len(a))
	for i := range a {
		out[i] = f(a[i])
	}
	return out
}

func (p Packed[T]) Add(q Packed[T]) Packed[T]      { return zipWith(p, q, T.Add) }
func (p Packed[T]) Sub(q Packed[T]) Packed[T]      { return zipWith(p, q, T.Sub) }
func (p Packed[T]) Mul(q Packed[T]) Packed[T]      { return zipWith(p, q, T.Mul) }
func (p Packed[T]) Square() Packed[T]              { return mapWith(p, T.Square) }
func (p Packed[T]) InvertOrZero() Packed[T]        { return mapWith(p, T.InvertOrZero) }
func (p Packed[T]) MulAlpha() Packed[T]            { return mapWith(p, T.MulAlpha) }
func (p Packed[T]) Neg() Packed[T]                 { return mapWith(p, T.Neg) }

func (p Packed[T]) Equal(q Packed[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// Interleave implements the block-transpose contract of spec §3
// ("Interleave contract") at lane granularity. For block size
// B = 2^logBlock, every 2B-lane window starting at j*2B is split so x'
// holds x's first-B-of-window followed by y's first-B-of-window, and y'
// holds x's second-B-of-window followed by y's second-B-of-window.
func Interleave[T Scalar[T]](x, y Packed[T], logBlock uint) (Packed[T], Packed[T], error) {
	width := len(x)
	if width != len(y) {
		return nil, nil, ErrLaneMismatch
	}
	block := 1 << logBlock
	if width == 0 || 2*block > width {
		return nil, nil, ErrBlockTooWide
	}

	xOut := make(Packed[T], width)
	yOut := make(Packed[T], width)
	for j := 0; j < width; j += 2 * block {
		for i := 0; i < block; i++ {
			xOut[j+i] = x[j+i]
			xOut[j+block+i] = y[j+i]
			yOut[j+i] = x[j+block+i]
			yOut[j+block+i] = y[j+block+i]
		}
	}
	return xOut, yOut, nil
}
