// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ntt implements the additive NTT (spec §2 component D): twiddle
// precomputation and in-place forward/inverse butterfly transforms over
// binary-field affine subspaces, generic over any coefficient type that
// supports addition with itself and multiplication by a T5 twiddle.
package ntt

import (
	"errors"
	"math/bits"

	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
)

// ErrInvalidLogSize is returned by Precompute for logSize < 0.
var ErrInvalidLogSize = errors.New("ntt: log_size must be >= 0")

// ErrSizeMismatch is returned by Forward/Inverse when the coefficient
// slice length does not equal 2^log_size.
var ErrSizeMismatch = errors.New("ntt: coefficient length does not match log_size")

// Coeff is the coefficient-type contract the transform requires (spec
// §4.D: "generic over the coefficient type F subject to F + F*T5 -> F").
type Coeff[T any] interface {
	Add(T) T
	MulT5(tower.T5) T
}

// AdditiveNTT is the precomputed twiddle state for a fixed log_size
// (spec §3 "Additive NTT state").
type AdditiveNTT struct {
	logSize  int
	twiddles [][]tower.T5 // twiddles[r] has 2^(logSize-1-r) entries
}

// LogSize returns the size this precompute was built for.
func (n *AdditiveNTT) LogSize() int { return n.logSize }

func subspaceMap(x, c tower.T5) tower.T5 {
	return x.Square().Add(c.Mul(x))
}

// vanishingMap computes V_s(x) = product_{i=0}^{2^s-1} (x + i), the
// GLOSSARY's vanishing map, naively: the transforms call it twice per
// NTT level (for the coset twiddle), so the O(2^s) product cost is
// amortized across the O(2^s) butterflies at that level; EvaluateNaive
// also uses it for its reference evaluation.
func vanishingMap(x tower.T5, s int) tower.T5 {
	acc := tower.OneT5()
	n := 1 << uint(s)
	for i := 0; i < n; i++ {
		acc = acc.Mul(x.Add(tower.NewT5(uint32(i))))
	}
	return acc
}

// Precompute builds the twiddle tables for a transform of size 2^logSize
// (spec §4.D "Precompute"): s_evals[0] is the standard basis above
// index 0, each subsequent level applies subspace_map using the
// previous level's normalization constant, and every level is scaled by
// its own norm inverse before being expanded into an XOR-subset-sum
// table.
func Precompute(logSize int) (*AdditiveNTT, error) {
	if logSize < 0 {
		return nil, ErrInvalidLogSize
	}
	if logSize == 0 {
		// A size-1 transform has no levels: Forward/Inverse are the
		// identity on the single coefficient.
		return &AdditiveNTT{logSize: 0, twiddles: nil}, nil
	}

	sEvals := make([][]tower.T5, logSize)
	norms := make([]tower.T5, logSize)

	s0 := make([]tower.T5, 0, logSize-1)
	for i := 1; i < logSize; i++ {
		b, err := tower.BasisT5(i)
		if err != nil {
			return nil, err
		}
		s0 = append(s0, b)
	}
	sEvals[0] = s0
	norms[0] = tower.OneT5()

	for k := 1; k < logSize; k++ {
		prev := sEvals[k-1]
		c := norms[k-1]
		next := make([]tower.T5, 0, len(prev)-1)
		for j := 1; j < len(prev); j++ {
			next = append(next, subspaceMap(prev[j], c))
		}
		sEvals[k] = next
		norms[k] = subspaceMap(prev[0], c)
	}

	for k := 0; k < logSize; k++ {
		inv := norms[k].InvertOrZero()
		for j := range sEvals[k] {
			sEvals[k][j] = sEvals[k][j].Mul(inv)
		}
	}

	twiddles := make([][]tower.T5, logSize)
	for k := 0; k < logSize; k++ {
		twiddles[k] = expandSubsetSums(sEvals[k])
	}

	return &AdditiveNTT{logSize: logSize, twiddles: twiddles}, nil
}

// expandSubsetSums builds the length-2^len(basis) table of every XOR
// subset sum of basis, with table[0] = 0 (spec §4.D "expand").
func expandSubsetSums(basis []tower.T5) []tower.T5 {
	n := 1 << uint(len(basis))
	table := make([]tower.T5, n)
	for i := 1; i < n; i++ {
		j := bits.TrailingZeros(uint(i))
		low := 1 << uint(j)
		table[i] = table[i^low].Add(basis[j])
	}
	return table
}

func (n *AdditiveNTT) cosetTwiddle(r int, coset tower.T5) tower.T5 {
	basisR, _ := tower.BasisT5(r)
	return vanishingMap(coset, r).Mul(vanishingMap(basisR, r).InvertOrZero())
}

// Forward runs the in-place forward butterfly transform (spec §4.D
// "Forward") over the given coset, for r descending from log_size-1 to 0.
func Forward[T Coeff[T]](n *AdditiveNTT, coeffs []T, coset tower.T5) error {
	if len(coeffs) != 1<<uint(n.logSize) {
		return ErrSizeMismatch
	}
	for r := n.logSize - 1; r >= 0; r-- {
		ct := n.cosetTwiddle(r, coset)
		parts := 1 << uint(r)
		stride := 1 << uint(r+1)
		blocks := 1 << uint(n.logSize-1-r)
		for b := 0; b < blocks; b++ {
			tw := n.twiddles[r][b].Add(ct)
			base := b * stride
			for p := 0; p < parts; p++ {
				left := base + p
				right := left + parts
				coeffs[left] = coeffs[left].Add(coeffs[right].MulT5(tw))
				coeffs[right] = coeffs[right].Add(coeffs[left])
			}
		}
	}
	return nil
}

// Inverse runs the in-place inverse butterfly transform (spec §4.D
// "Inverse"), for r ascending from 0 to log_size-1; Forward composed
// with Inverse over the same coset is the identity.
func Inverse[T Coeff[T]](n *AdditiveNTT, coeffs []T, coset tower.T5) error {
	if len(coeffs) != 1<<uint(n.logSize) {
		return ErrSizeMismatch
	}
	for r := 0; r < n.logSize; r++ {
		ct := n.cosetTwiddle(r, coset)
		parts := 1 << uint(r)
		stride := 1 << uint(r+1)
		blocks := 1 << uint(n.logSize-1-r)
		for b := 0; b < blocks; b++ {
			tw := n.twiddles[r][b].Add(ct)
			base := b * stride
			for p := 0; p < parts; p++ {
				left := base + p
				right := left + parts
				coeffs[right] = coeffs[right].Add(coeffs[left])
				coeffs[left] = coeffs[left].Add(coeffs[right].MulT5(tw))
			}
		}
	}
	return nil
}

// EvaluateNaive evaluates the coefficient vector directly at the i-th
// affine subspace point, by brute-force summation over all monomials of
// the basis the transform works in: coefficient j multiplies the product
// of the normalized vanishing maps V_k(x)/V_k(basis(k)) over the set bits
// k of j. This is the reference used to test Forward against (spec §8
// property 8), not a production code path.
func EvaluateNaive(coeffs []tower.T5, i int) tower.T5 {
	x := tower.NewT5(uint32(i))
	logSize := bits.Len(uint(len(coeffs))) - 1
	w := make([]tower.T5, logSize)
	for k := range w {
		bk, _ := tower.BasisT5(k)
		w[k] = vanishingMap(x, k).Mul(vanishingMap(bk, k).InvertOrZero())
	}
	acc := tower.ZeroT5()
	for j, c := range coeffs {
		for k := 0; k < logSize; k++ {
			if (j>>uint(k))&1 == 1 {
				c = c.Mul(w[k])
			}
		}
		acc = acc.Add(c)
	}
	return acc
}
