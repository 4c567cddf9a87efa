// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rs implements the block-encoding Reed-Solomon commitment's
// inner encoder (spec §2 component E): interleaved block encode of a
// coefficient matrix via the additive NTT.
package rs

import (
	"errors"

	"github.com/HiddenAndBound/block-level-testing-pcs/ntt"
	"github.com/HiddenAndBound/block-level-testing-pcs/packed"
	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
)

// RATE and PackingDegree are compile-time constants (spec §6): each lane
// column unpacks to 2^PackingDegree base-field scalars.
const (
	RATE          = 4
	PackingDegree = 5
)

// ErrPolyLength is returned when a polynomial's length is not a power of
// two, or is too short to reshape into a rows x cols matrix.
var ErrPolyLength = errors.New("rs: polynomial length must be a power of two")

// Code is the encoded coefficient matrix (spec §3 "Code matrix"): rows x
// cols of T5 values reshaped from the input polynomial, with each row
// encoded out to width RATE*cols.
type Code struct {
	rows, cols int
	matrix     [][]tower.T5 // matrix[r] has length RATE*cols
}

func log2(n int) int {
	l := 0
	for (1 << uint(l)) < n {
		l++
	}
	return l
}

// logCols picks log_cols = min((log_len+1)/2, (2^PackingDegree+PackingDegree) - log2(RATE))
// per spec §4.E.
func logCols(logLen int) int {
	a := (logLen + 1) / 2
	b := (1<<uint(PackingDegree) + PackingDegree) - log2(RATE)
	if a < b {
		return a
	}
	return b
}

// NewCode builds a Code from a length-2^n polynomial of T5 scalars,
// reshaping it row-major into rows x cols and encoding every row with
// the additive NTT (spec §4.E "Code::new"). Rows are encoded with n when n
// was precomputed for exactly log_cols; otherwise a fresh precompute of
// that size is built and used instead.
func NewCode(poly []tower.T5, n *ntt.AdditiveNTT) (*Code, error) {
	logLen := log2(len(poly))
	if len(poly) != 1<<uint(logLen) {
		return nil, ErrPolyLength
	}
	logC := logCols(logLen)
	if logC > logLen {
		logC = logLen
	}
	logRows := logLen - logC
	rows := 1 << uint(logRows)
	cols := 1 << uint(logC)

	rowNTT := n
	if n.LogSize() != logC {
		precomputed, err := ntt.Precompute(logC)
		if err != nil {
			return nil, err
		}
		rowNTT = precomputed
	}

	matrix := make([][]tower.T5, rows)
	for r := 0; r < rows; r++ {
		row := poly[r*cols : (r+1)*cols]
		encoded, err := Encode(rowNTT, row)
		if err != nil {
			return nil, err
		}
		matrix[r] = encoded
	}

	return &Code{rows: rows, cols: cols, matrix: matrix}, nil
}

func (c *Code) Rows() int { return c.rows }
func (c *Code) Cols() int { return c.cols }

// Col returns the rows entries at column idx of the encoded matrix
// (spec §4.E "Code::col"), idx in [0, RATE*cols).
func (c *Code) Col(idx int) []tower.T5 {
	out := make([]tower.T5, c.rows)
	for r := range out {
		out[r] = c.matrix[r][idx]
	}
	return out
}

// Encode is the systematic block encoder of spec §4.E: m0 =
// inverse_ntt(m, coset=0), then for i in [1,RATE) append
// forward_ntt(m0, coset=i*len(m)); the first len(m) output positions are
// m itself (the coset-0 branch is the identity by construction, so it is
// emitted directly rather than recomputed).
func Encode(n *ntt.AdditiveNTT, m []tower.T5) ([]tower.T5, error) {
	l := len(m)
	m0 := make([]tower.T5, l)
	copy(m0, m)
	if err := ntt.Inverse(n, m0, tower.ZeroT5()); err != nil {
		return nil, err
	}

	out := make([]tower.T5, 0, RATE*l)
	out = append(out, m...)
	for i := 1; i < RATE; i++ {
		part := make([]tower.T5, l)
		copy(part, m0)
		if err := ntt.Forward(n, part, tower.NewT5(uint32(i*l))); err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// EncodeExtension is Encode lifted to packed.Algebra32 coefficients,
// used by the verifier to re-encode folded_poly (spec §4.G verify step
// 2, spec §9 "Open question" on the ntt size required here: the caller
// must pass an ntt precomputed for log2(len(m)), i.e. log_cols when m is
// folded_poly packed into cols Algebra32 elements).
func EncodeExtension(n *ntt.AdditiveNTT, m []packed.Algebra32) ([]packed.Algebra32, error) {
	l := len(m)
	m0 := make([]packed.Algebra32, l)
	copy(m0, m)
	if err := ntt.Inverse(n, m0, tower.ZeroT5()); err != nil {
		return nil, err
	}

	out := make([]packed.Algebra32, 0, RATE*l)
	out = append(out, m...)
	for i := 1; i < RATE; i++ {
		part := make([]packed.Algebra32, l)
		copy(part, m0)
		if err := ntt.Forward(n, part, tower.NewT5(uint32(i*l))); err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}
