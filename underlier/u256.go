// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package underlier

import "github.com/holiman/uint256"

// U256 is the 256-bit underlier, backed by holiman/uint256's fixed-width
// integer rather than a hand-rolled 4-limb type: the library already
// implements exactly the AND/OR/XOR/shift operations the underlier contract
// needs for this width.
type U256 struct {
	v uint256.Int
}

// U256FromLimbs builds a U256 from four 64-bit limbs, least-significant first.
func U256FromLimbs(w0, w1, w2, w3 uint64) U256 {
	var z uint256.Int
	z[0], z[1], z[2], z[3] = w0, w1, w2, w3
	return U256{v: z}
}

func (a U256) And(b U256) U256 { var z uint256.Int; z.And(&a.v, &b.v); return U256{z} }
func (a U256) Or(b U256) U256  { var z uint256.Int; z.Or(&a.v, &b.v); return U256{z} }
func (a U256) Xor(b U256) U256 { var z uint256.Int; z.Xor(&a.v, &b.v); return U256{z} }
func (a U256) Not() U256       { var z uint256.Int; z.Not(&a.v); return U256{z} }
func (a U256) IsZero() bool    { return a.v.IsZero() }

func FillU256(bit bool) U256 {
	if !bit {
		return U256{}
	}
	var z uint256.Int
	z.Not(&z)
	return U256{z}
}

func (a U256) Shl(k uint) U256 {
	if k >= 256 {
		return U256{}
	}
	var z uint256.Int
	z.Lsh(&a.v, k)
	return U256{z}
}

func (a U256) Shr(k uint) U256 {
	if k >= 256 {
		return U256{}
	}
	var z uint256.Int
	z.Rsh(&a.v, k)
	return U256{z}
}

func (a U256) BitAt(i uint) bool { return a.v.Bit(int(i)) == 1 }

func (a U256) SetBit(i uint, v bool) U256 {
	bit := uint256.NewInt(1)
	bit.Lsh(bit, i)
	if v {
		var z uint256.Int
		z.Or(&a.v, bit)
		return U256{z}
	}
	var mask uint256.Int
	mask.Not(bit)
	var z uint256.Int
	z.And(&a.v, &mask)
	return U256{z}
}

// InterleaveU256 is the 256-bit specialization of the generic block-transpose
// contract (spec §3); logBlock must be in [0, 8).
func InterleaveU256(a, b U256, logBlock uint) (U256, U256, error) {
	if logBlock >= 8 {
		return U256{}, U256{}, ErrBlockTooWide
	}
	block := uint(1) << logBlock
	var outA, outB U256
	for pos := uint(0); pos < 256; pos += 2 * block {
		for i := uint(0); i < block; i++ {
			outA = outA.SetBit(pos+i, a.BitAt(pos+i))
			outA = outA.SetBit(pos+block+i, b.BitAt(pos+i))
			outB = outB.SetBit(pos+i, a.BitAt(pos+block+i))
			outB = outB.SetBit(pos+block+i, b.BitAt(pos+block+i))
		}
	}
	return outA, outB, nil
}

// Bytes32 encodes a in little-endian order.
func (a U256) Bytes32() [32]byte {
	be := a.v.Bytes32()
	var le [32]byte
	for i := range be {
		le[i] = be[31-i]
	}
	return le
}

func U256FromBytes32(b [32]byte) U256 {
	var be [32]byte
	for i := range b {
		be[i] = b[31-i]
	}
	var v uint256.Int
	v.SetBytes(be[:])
	return U256{v: v}
}
