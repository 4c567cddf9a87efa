// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"math/rand/v2"
	"testing"

	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
	"github.com/stretchr/testify/require"
)

func randCoeffs(rng *rand.Rand, n int) []tower.T5 {
	out := make([]tower.T5, n)
	for i := range out {
		out[i] = tower.NewT5(rng.Uint32())
	}
	return out
}

// TestForwardInverseRoundTrip is spec §8 property 7.
func TestForwardInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for logSize := 1; logSize <= 6; logSize++ {
		n, err := Precompute(logSize)
		require.NoError(t, err)

		for _, coset := range []uint32{0, 1, 7} {
			original := randCoeffs(rng, 1<<uint(logSize))
			coeffs := append([]tower.T5(nil), original...)

			require.NoError(t, Forward(n, coeffs, tower.NewT5(coset)))
			require.NoError(t, Inverse(n, coeffs, tower.NewT5(coset)))

			for i := range coeffs {
				require.True(t, coeffs[i].Equal(original[i]), "logSize=%d coset=%d index=%d", logSize, coset, i)
			}
		}
	}
}

// TestForwardMatchesEvaluateNaive is spec §8 property 8: forward_ntt(c,0)
// agrees with direct polynomial evaluation at every point of the subspace.
func TestForwardMatchesEvaluateNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	for logSize := 1; logSize <= 5; logSize++ {
		n, err := Precompute(logSize)
		require.NoError(t, err)

		original := randCoeffs(rng, 1<<uint(logSize))
		coeffs := append([]tower.T5(nil), original...)
		require.NoError(t, Forward(n, coeffs, tower.ZeroT5()))

		for i := range coeffs {
			require.True(t, coeffs[i].Equal(EvaluateNaive(original, i)), "logSize=%d index=%d", logSize, i)
		}
	}
}

func TestForwardRejectsWrongLength(t *testing.T) {
	n, err := Precompute(3)
	require.NoError(t, err)
	err = Forward(n, make([]tower.T5, 4), tower.ZeroT5())
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestPrecomputeRejectsInvalidLogSize(t *testing.T) {
	_, err := Precompute(-1)
	require.ErrorIs(t, err, ErrInvalidLogSize)
}

func TestPrecomputeTrivialSize(t *testing.T) {
	n, err := Precompute(0)
	require.NoError(t, err)
	coeffs := []tower.T5{tower.NewT5(42)}
	require.NoError(t, Forward(n, coeffs, tower.ZeroT5()))
	require.True(t, coeffs[0].Equal(tower.NewT5(42)))
}
