// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package underlier

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitwiseHomomorphism32(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 256; i++ {
		x, y := uint32(rng.Uint64()), uint32(rng.Uint64())
		require.Equal(t, x&y, And(x, y))
		require.Equal(t, x|y, Or(x, y))
		require.Equal(t, x^y, Xor(x, y))
		require.Equal(t, ^x, Not(x))
	}
}

func bitserialShl(x uint64, k, width uint) uint64 {
	var out uint64
	for i := uint(0); i < width; i++ {
		if (x>>i)&1 == 1 && i+k < width {
			out |= 1 << (i + k)
		}
	}
	return out
}

func bitserialShr(x uint64, k, width uint) uint64 {
	var out uint64
	for i := uint(0); i < width; i++ {
		if (x>>i)&1 == 1 && i >= k {
			out |= 1 << (i - k)
		}
	}
	return out
}

func TestShiftsMatchBitSerial64(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	x := rng.Uint64()
	for k := uint(0); k < 64; k++ {
		require.Equal(t, bitserialShl(x, k, 64), Shl(x, k))
		require.Equal(t, bitserialShr(x, k, 64), Shr(x, k))
	}
}

func TestU128ShiftsMatchBitSerial(t *testing.T) {
	a := U128{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	for k := uint(0); k < 128; k++ {
		shl := a.Shl(k)
		for i := uint(0); i < 128; i++ {
			expect := i >= k && a.BitAt(i-k)
			require.Equal(t, expect, shl.BitAt(i), "shl k=%d bit=%d", k, i)
		}
		shr := a.Shr(k)
		for i := uint(0); i < 128; i++ {
			expect := i+k < 128 && a.BitAt(i+k)
			require.Equal(t, expect, shr.BitAt(i), "shr k=%d bit=%d", k, i)
		}
	}
}

func TestU128Bytes16RoundTrip(t *testing.T) {
	a := U128{Lo: 0x1122334455667788, Hi: 0x99aabbccddeeff00}
	require.Equal(t, a, U128FromBytes16(a.Bytes16()))
}

func TestInterleaveRoundTrip32(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	x, y := uint32(rng.Uint64()), uint32(rng.Uint64())
	for b := uint(0); b < 5; b++ {
		xp, yp, err := Interleave(x, y, b, 32)
		require.NoError(t, err)
		x2, y2, err := Interleave(xp, yp, b, 32)
		require.NoError(t, err)
		require.Equal(t, x, x2)
		require.Equal(t, y, y2)
	}
}

func TestInterleaveRejectsWideBlock(t *testing.T) {
	_, _, err := Interleave(uint32(1), uint32(2), 5, 32)
	require.ErrorIs(t, err, ErrBlockTooWide)
}

func TestInterleaveU128RoundTrip(t *testing.T) {
	a := U128{Lo: 0x1111111111111111, Hi: 0x2222222222222222}
	b := U128{Lo: 0x3333333333333333, Hi: 0x4444444444444444}
	for logBlock := uint(0); logBlock < 7; logBlock++ {
		ap, bp, err := InterleaveU128(a, b, logBlock)
		require.NoError(t, err)
		a2, b2, err := InterleaveU128(ap, bp, logBlock)
		require.NoError(t, err)
		require.Equal(t, a, a2)
		require.Equal(t, b, b2)
	}
}

func TestU256ShiftAndBytes(t *testing.T) {
	a := U256FromLimbs(1, 2, 3, 4)
	shl := a.Shl(64)
	require.Equal(t, U256FromLimbs(0, 1, 2, 3), shl)
	b := a.Bytes32()
	require.Equal(t, a, U256FromBytes32(b))
}

func TestInterleaveU256RoundTrip(t *testing.T) {
	a := U256FromLimbs(0x1111111111111111, 0x2222222222222222, 0x3333333333333333, 0x4444444444444444)
	b := U256FromLimbs(0x5555555555555555, 0x6666666666666666, 0x7777777777777777, 0x8888888888888888)
	for logBlock := uint(0); logBlock < 8; logBlock++ {
		ap, bp, err := InterleaveU256(a, b, logBlock)
		require.NoError(t, err)
		a2, b2, err := InterleaveU256(ap, bp, logBlock)
		require.NoError(t, err)
		require.Equal(t, a, a2)
		require.Equal(t, b, b2)
	}
}

func TestInterleaveU256RejectsWideBlock(t *testing.T) {
	_, _, err := InterleaveU256(U256{}, U256{}, 8)
	require.ErrorIs(t, err, ErrBlockTooWide)
}

func TestU512FillAndFromU128s(t *testing.T) {
	max128 := U128{Lo: ^uint64(0), Hi: ^uint64(0)}
	fromU128s := U512FromU128s(max128, max128, max128, max128)
	require.Equal(t, FillU512(true), fromU128s)
	require.True(t, FillU512(false).IsZero())
}

func TestU512ShiftRoundTrip(t *testing.T) {
	a := U512{Lo: U256FromLimbs(1, 2, 3, 4), Hi: U256FromLimbs(5, 6, 7, 8)}
	for k := uint(0); k < 512; k += 7 {
		shl := a.Shl(k)
		back := shl.Shr(k)
		for i := uint(0); i < 512-k; i++ {
			require.Equal(t, a.BitAt(i), back.BitAt(i), "k=%d i=%d", k, i)
		}
	}
}
