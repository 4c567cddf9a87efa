// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package packed

import "github.com/HiddenAndBound/block-level-testing-pcs/tower"

// Algebra32 is the packed-algebra-32 component (spec §2 component H): 32
// large-field (polyval) lanes, one per bit of a T5 base-field scalar.
// folded_poly is a sequence of these, cols long; the verifier's
// re-encoding step runs the additive NTT over Algebra32 values, which is
// exactly the NTT's required coefficient-type contract "F + F*T5 -> F"
// (spec §4.D) instantiated with F = Algebra32.
type Algebra32 struct {
	lanes [32]tower.Polyval128
}

// PackAlgebra32 builds an Algebra32 from its 32 lanes.
func PackAlgebra32(lanes [32]tower.Polyval128) Algebra32 { return Algebra32{lanes} }

// Unpack returns the 32 underlying polyval lanes.
func (a Algebra32) Unpack() [32]tower.Polyval128 { return a.lanes }

// Pack chunks a flat polyval slice (length a multiple of 32) into Algebra32
// values, 32 lanes at a time: the slice-level form of PackAlgebra32 named in
// SPEC_FULL.md's component H ("Pack(vals []Polyval128) []PackedAlgebra32" —
// vals here are already in the polyval basis, per the folded_poly field
// decision recorded in DESIGN.md).
func Pack(vals []tower.Polyval128) []Algebra32 {
	out := make([]Algebra32, len(vals)/32)
	for j := range out {
		var lanes [32]tower.Polyval128
		copy(lanes[:], vals[j*32:(j+1)*32])
		out[j] = PackAlgebra32(lanes)
	}
	return out
}

// Unpack flattens a slice of Algebra32 back into its polyval lanes, the
// inverse of Pack.
func Unpack(vals []Algebra32) []tower.Polyval128 {
	out := make([]tower.Polyval128, len(vals)*32)
	for j, a := range vals {
		lanes := a.Unpack()
		copy(out[j*32:(j+1)*32], lanes[:])
	}
	return out
}

func ZeroAlgebra32() Algebra32 { return Algebra32{} }

func (a Algebra32) Add(b Algebra32) Algebra32 {
	var out Algebra32
	for i := range a.lanes {
		out.lanes[i] = a.lanes[i].Add(b.lanes[i])
	}
	return out
}

func (a Algebra32) Sub(b Algebra32) Algebra32 { return a.Add(b) }

// MulT5 multiplies by the tower scalar t on the T5 side: lane b stands for
// the T5 basis element 1<<b, so lane b's value is added into every lane c
// where bit c of (1<<b)*t is set. This matches the NTT's "F * T5 -> F"
// coefficient contract and commutes with UnpackedLinearCombination, so an
// encoded folded_poly agrees with the linear combination of any encoded
// column, not only the systematic ones.
func (a Algebra32) MulT5(t tower.T5) Algebra32 {
	var out Algebra32
	for b := range a.lanes {
		prod := tower.NewT5(1 << uint(b)).Mul(t).Val()
		for c := 0; c < 32; c++ {
			if (prod>>uint(c))&1 == 1 {
				out.lanes[c] = out.lanes[c].Add(a.lanes[b])
			}
		}
	}
	return out
}

func (a Algebra32) Equal(b Algebra32) bool {
	for i := range a.lanes {
		if !a.lanes[i].Equal(b.lanes[i]) {
			return false
		}
	}
	return true
}

// UnpackedLinearCombination computes, for large-field weights (length
// rows) and a base-field column (length rows), lc.lanes[b] = sum over r
// where bit b of col[r] is set, of weights[r]. This is both the
// prover's per-column fold (spec §4.G prove step 3, with weights over
// T128 lifted to polyval) and the verifier's per-query linear
// combination (spec §4.G verify step, "unpacked_linear_combination").
func UnpackedLinearCombination(weights []tower.Polyval128, col []tower.T5) Algebra32 {
	var out Algebra32
	for r, c := range col {
		v := c.Val()
		for b := 0; b < 32; b++ {
			if (v>>uint(b))&1 == 1 {
				out.lanes[b] = out.lanes[b].Add(weights[r])
			}
		}
	}
	return out
}

// EvaluateUnpacked evaluates the 32 lanes back into a single large-field
// value given the bit weights of the T5 basis decomposition (basisWeights
// length 32, e.g. tail_scalars): sum_b basisWeights[b] * lanes[b]. This is
// the inverse direction of UnpackedLinearCombination, computed by the same
// free function EvaluateUnpacked that the verifier's final tail-sum
// assertion (spec §4.G verify step 5) calls over the whole folded_poly.
func (a Algebra32) EvaluateUnpacked(basisWeights [32]tower.Polyval128) tower.Polyval128 {
	return EvaluateUnpacked(basisWeights[:], a.lanes[:])
}

// EvaluateUnpacked is the free-function, slice-level dot product named in
// SPEC_FULL.md's component H: sum_i weights[i]*vals[i], over matching-length
// polyval slices. This backs both (Algebra32).EvaluateUnpacked above and the
// verifier's final tail-sum assertion over the full folded_poly (spec §4.G
// verify step 5), which previously reimplemented the same loop inline.
func EvaluateUnpacked(weights, vals []tower.Polyval128) tower.Polyval128 {
	acc := tower.Polyval128{}
	for i, w := range weights {
		acc = acc.Add(w.Mul(vals[i]))
	}
	return acc
}
