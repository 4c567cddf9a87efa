// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package underlier

// U512 is the widest underlier, stored as two 256-bit halves. Lo holds bits
// [0,256), Hi holds bits [256,512). Per spec §4.A, U512's Shl/Shr are
// specified to agree bit-for-bit with the naive bit-serial shift for every
// 0 <= k < 512, and its interleave accepts log_block in {0..6}; wider block
// sizes must be decomposed by the caller.
type U512 struct {
	Lo, Hi U256
}

func FillU512(bit bool) U512 { return U512{Lo: FillU256(bit), Hi: FillU256(bit)} }

// U512FromU128s builds a U512 from four little-endian-ordered 128-bit words,
// matching the E5 scenario's `M512::from([u128::MAX; 4])`.
func U512FromU128s(w0, w1, w2, w3 U128) U512 {
	lo := U256FromLimbs(w0.Lo, w0.Hi, w1.Lo, w1.Hi)
	hi := U256FromLimbs(w2.Lo, w2.Hi, w3.Lo, w3.Hi)
	return U512{Lo: lo, Hi: hi}
}

func (a U512) And(b U512) U512 { return U512{a.Lo.And(b.Lo), a.Hi.And(b.Hi)} }
func (a U512) Or(b U512) U512  { return U512{a.Lo.Or(b.Lo), a.Hi.Or(b.Hi)} }
func (a U512) Xor(b U512) U512 { return U512{a.Lo.Xor(b.Lo), a.Hi.Xor(b.Hi)} }
func (a U512) Not() U512       { return U512{a.Lo.Not(), a.Hi.Not()} }
func (a U512) IsZero() bool    { return a.Lo.IsZero() && a.Hi.IsZero() }

func (a U512) BitAt(i uint) bool {
	if i < 256 {
		return a.Lo.BitAt(i)
	}
	return a.Hi.BitAt(i - 256)
}

func (a U512) SetBit(i uint, v bool) U512 {
	if i < 256 {
		a.Lo = a.Lo.SetBit(i, v)
		return a
	}
	a.Hi = a.Hi.SetBit(i-256, v)
	return a
}

func (a U512) Shl(k uint) U512 {
	switch {
	case k == 0:
		return a
	case k >= 512:
		return U512{}
	case k < 256:
		return U512{Lo: a.Lo.Shl(k), Hi: a.Hi.Shl(k).Or(a.Lo.Shr(256 - k))}
	default:
		return U512{Lo: U256{}, Hi: a.Lo.Shl(k - 256)}
	}
}

func (a U512) Shr(k uint) U512 {
	switch {
	case k == 0:
		return a
	case k >= 512:
		return U512{}
	case k < 256:
		return U512{Lo: a.Lo.Shr(k).Or(a.Hi.Shl(256 - k)), Hi: a.Hi.Shr(k)}
	default:
		return U512{Lo: a.Hi.Shr(k - 256), Hi: U256{}}
	}
}

// InterleaveU512 implements the block-transpose contract for block sizes up
// to 2^6 bits, operating bit by bit; wider blocks must be decomposed by the
// caller, per spec §4.A.
func InterleaveU512(a, b U512, logBlock uint) (U512, U512, error) {
	if logBlock > 6 {
		return U512{}, U512{}, ErrBlockTooWide
	}
	block := uint(1) << logBlock
	var outA, outB U512
	for pos := uint(0); pos < 512; pos += 2 * block {
		for i := uint(0); i < block; i++ {
			outA = outA.SetBit(pos+i, a.BitAt(pos+i))
			outA = outA.SetBit(pos+block+i, b.BitAt(pos+i))
			outB = outB.SetBit(pos+i, a.BitAt(pos+block+i))
			outB = outB.SetBit(pos+block+i, b.BitAt(pos+block+i))
		}
	}
	return outA, outB, nil
}
