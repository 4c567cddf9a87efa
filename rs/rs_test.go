// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rs

import (
	"math/rand/v2"
	"testing"

	"github.com/HiddenAndBound/block-level-testing-pcs/ntt"
	"github.com/HiddenAndBound/block-level-testing-pcs/packed"
	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsSystematic(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	const logLen = 3
	n, err := ntt.Precompute(logLen)
	require.NoError(t, err)

	m := make([]tower.T5, 1<<logLen)
	for i := range m {
		m[i] = tower.NewT5(rng.Uint32())
	}

	out, err := Encode(n, m)
	require.NoError(t, err)
	require.Len(t, out, RATE*len(m))
	for i := range m {
		require.True(t, out[i].Equal(m[i]))
	}
}

// TestEncodeExtensionIsSystematic mirrors TestEncodeIsSystematic, lifted to
// packed.Algebra32 coefficients (spec §4.G verify step 2's re-encode path).
func TestEncodeExtensionIsSystematic(t *testing.T) {
	rng := rand.New(rand.NewPCG(33, 34))
	const logLen = 2
	n, err := ntt.Precompute(logLen)
	require.NoError(t, err)

	m := make([]packed.Algebra32, 1<<logLen)
	for i := range m {
		var lanes [32]tower.Polyval128
		for b := range lanes {
			lanes[b] = tower.NewT128(rng.Uint64(), rng.Uint64()).ToPolyval()
		}
		m[i] = packed.PackAlgebra32(lanes)
	}

	out, err := EncodeExtension(n, m)
	require.NoError(t, err)
	require.Len(t, out, RATE*len(m))
	for i := range m {
		require.True(t, out[i].Equal(m[i]))
	}
}

func TestNewCodeShapeAndColumns(t *testing.T) {
	const logLen = 6 // 64 elements, spec scenario E2
	n, err := ntt.Precompute(logLen)
	require.NoError(t, err)

	poly := make([]tower.T5, 1<<logLen)
	for i := range poly {
		poly[i] = tower.NewT5(uint32(i + 1))
	}

	code, err := NewCode(poly, n)
	require.NoError(t, err)
	require.Equal(t, code.rows*code.cols, len(poly))

	col := code.Col(0)
	require.Len(t, col, code.Rows())
}
