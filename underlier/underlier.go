// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package underlier provides the fixed-width bit containers that scalar and
// packed field values are stored in: 8, 16, 32 and 64 bits as native
// unsigned integers, 128/256/512 bits as dedicated types. There is no
// separate 1-bit container type.
package underlier

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBlockTooWide is raised when interleave is asked for a log_block
	// at or above log2 of the container's width, i.e. a block that does not
	// fit twice into the container.
	ErrBlockTooWide = errors.New("underlier: log_block_len must be less than LOG_WIDTH")
	// ErrShiftOutOfRange names a shift amount at or past the width. No
	// function in this package returns it: Shl/Shr by such an amount yield
	// zero.
	ErrShiftOutOfRange = errors.New("underlier: shift amount out of range")
)

// Unsigned is the set of native-width containers sharing one generic
// bitwise/shift implementation. 128/256/512-bit containers have their own
// dedicated types (U128, U256, U512) since Go has no native integer that
// wide.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// And returns the bitwise AND of a and b.
func And[T Unsigned](a, b T) T { return a & b }

// Or returns the bitwise OR of a and b.
func Or[T Unsigned](a, b T) T { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor[T Unsigned](a, b T) T { return a ^ b }

// Not returns the bitwise complement of a.
func Not[T Unsigned](a T) T { return ^a }

// Shl performs a logical (zero-fill) left shift by k bits.
func Shl[T Unsigned](a T, k uint) T {
	if k == 0 {
		return a
	}
	return a << k
}

// Shr performs a logical (zero-fill) right shift by k bits.
func Shr[T Unsigned](a T, k uint) T {
	if k == 0 {
		return a
	}
	return a >> k
}

// Fill splats a single bit to every position of the container's width.
func Fill[T Unsigned](bit bool) T {
	if bit {
		return ^T(0)
	}
	return T(0)
}

// BitAt reports whether bit i of a is set.
func BitAt[T Unsigned](a T, i uint) bool {
	return (a>>i)&1 == 1
}

// SetBit returns a with bit i set to v, leaving every other bit unchanged.
func SetBit[T Unsigned](a T, i uint, v bool) T {
	if v {
		return a | (T(1) << i)
	}
	return a &^ (T(1) << i)
}

// Interleave implements the block-transpose contract of spec §3: treating a
// and b as sequences of 2^logBlock-bit blocks, it returns (a', b') such that
// for every window of two blocks from each operand, a' holds the "even"
// half (from a then from b) and b' the "odd" half.
func Interleave[T Unsigned](a, b T, logBlock uint, width uint) (T, T, error) {
	if logBlock+1 >= uint(bits.Len(width)) {
		return 0, 0, fmt.Errorf("%w: log_block_len=%d width=%d", ErrBlockTooWide, logBlock, width)
	}
	block := uint(1) << logBlock
	var outA, outB T
	for pos := uint(0); pos < width; pos += 2 * block {
		// low half of the 2-block window: a's block then b's block
		for i := uint(0); i < block; i++ {
			outA = SetBit(outA, pos+i, BitAt(a, pos+i))
			outA = SetBit(outA, pos+block+i, BitAt(b, pos+i))
			outB = SetBit(outB, pos+i, BitAt(a, pos+block+i))
			outB = SetBit(outB, pos+block+i, BitAt(b, pos+block+i))
		}
	}
	return outA, outB, nil
}
