// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package packed

import (
	"math/rand/v2"
	"testing"

	"github.com/HiddenAndBound/block-level-testing-pcs/tower"
	"github.com/stretchr/testify/require"
)

func randT5(rng *rand.Rand) tower.T5 { return tower.NewT5(rng.Uint32()) }

// TestLaneHomomorphism is spec §8 property 4.
func TestLaneHomomorphism(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	const width = 8

	f := make([]tower.T5, width)
	g := make([]tower.T5, width)
	for i := range f {
		f[i], g[i] = randT5(rng), randT5(rng)
	}

	p := FromFn(width, func(i int) tower.T5 { return f[i] })
	q := FromFn(width, func(i int) tower.T5 { return g[i] })

	sum := p.Add(q)
	prod := p.Mul(q)
	sq := p.Square()
	inv := p.InvertOrZero()
	alpha := p.MulAlpha()

	for i := 0; i < width; i++ {
		require.True(t, sum.Get(i).Equal(f[i].Add(g[i])))
		require.True(t, prod.Get(i).Equal(f[i].Mul(g[i])))
		require.True(t, sq.Get(i).Equal(f[i].Square()))
		require.True(t, inv.Get(i).Equal(f[i].InvertOrZero()))
		require.True(t, alpha.Get(i).Equal(f[i].MulAlpha()))
	}
}

// TestInterleaveRoundTrip is spec §8 property 3, lifted to packed lanes.
func TestInterleaveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const width = 8

	x := FromFn(width, func(int) tower.T5 { return randT5(rng) })
	y := FromFn(width, func(int) tower.T5 { return randT5(rng) })

	for b := uint(0); b < 2; b++ {
		xp, yp, err := Interleave(x, y, b)
		require.NoError(t, err)
		x2, y2, err := Interleave(xp, yp, b)
		require.NoError(t, err)
		require.True(t, x.Equal(x2))
		require.True(t, y.Equal(y2))
	}
}

func TestInterleaveRejectsWideBlock(t *testing.T) {
	x := Broadcast(4, tower.ZeroT5())
	y := Broadcast(4, tower.ZeroT5())
	_, _, err := Interleave(x, y, 2)
	require.ErrorIs(t, err, ErrBlockTooWide)
}

func TestAlgebra32PackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	var lanes [32]tower.Polyval128
	for i := range lanes {
		lanes[i] = tower.NewPolyval128(rng.Uint64(), rng.Uint64())
	}
	a := PackAlgebra32(lanes)
	require.Equal(t, lanes, a.Unpack())
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 19))
	vals := make([]tower.Polyval128, 3*32)
	for i := range vals {
		vals[i] = tower.NewPolyval128(rng.Uint64(), rng.Uint64())
	}

	chunks := Pack(vals)
	require.Len(t, chunks, 3)
	back := Unpack(chunks)
	require.Len(t, back, len(vals))
	for i := range vals {
		require.True(t, vals[i].Equal(back[i]), "index %d", i)
	}
}

func TestEvaluateUnpacked(t *testing.T) {
	weights := []tower.Polyval128{tower.NewPolyval128(0, 1), tower.NewPolyval128(0, 2)}
	vals := []tower.Polyval128{tower.OnePolyval128(), tower.ZeroPolyval128()}

	got := EvaluateUnpacked(weights, vals)
	want := weights[0].Mul(vals[0]).Add(weights[1].Mul(vals[1]))
	require.True(t, got.Equal(want))
}

func TestUnpackedLinearCombination(t *testing.T) {
	weights := []tower.Polyval128{
		tower.NewPolyval128(0, 1),
		tower.NewPolyval128(0, 2),
	}
	cols := []tower.T5{tower.NewT5(0b101), tower.NewT5(0b001)}

	lc := UnpackedLinearCombination(weights, cols)
	lanes := lc.Unpack()

	// bit 0 is set in both rows: weights[0] + weights[1].
	require.True(t, lanes[0].Equal(weights[0].Add(weights[1])))
	// bit 2 is set only in row 0.
	require.True(t, lanes[2].Equal(weights[0]))
	// bit 1 is set in neither row.
	require.True(t, lanes[1].IsZero())
}
