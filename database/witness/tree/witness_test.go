// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tree

import (
	"testing"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/0xsoniclabs/stateless/go/database/witness/proof"
	"github.com/stretchr/testify/require"
)

var _ Store = (*Witness)(nil)

func idx(v uint64) gindex.Index {
	return gindex.FromUint64(v)
}

func chunk(b byte) common.Chunk {
	var res common.Chunk
	res[0] = b
	return res
}

// newTestWitness creates a witness with leaves 2, 6, and 7.
func newTestWitness(t *testing.T) *Witness {
	t.Helper()
	data, err := proof.Proof{
		Indices: []gindex.Index{idx(2), idx(6), idx(7)},
		Values:  []common.Chunk{chunk(2), chunk(6), chunk(7)},
	}.Encode()
	require.NoError(t, err)
	witness, err := NewWitness(data)
	require.NoError(t, err)
	return witness
}

func TestWitness_RootIsHashOfLeaves(t *testing.T) {
	witness := newTestWitness(t)
	want := common.HashPair(chunk(2), common.HashPair(chunk(6), chunk(7)))
	require.Equal(t, common.Hash(want), witness.Root())
}

func TestWitness_RootOfSingleNodeProofIsItsValue(t *testing.T) {
	require := require.New(t)
	data, err := proof.Proof{
		Indices: []gindex.Index{gindex.One()},
		Values:  []common.Chunk{chunk(9)},
	}.Encode()
	require.NoError(err)
	witness, err := NewWitness(data)
	require.NoError(err)
	require.Equal(common.Hash(chunk(9)), witness.Root())
}

func TestWitness_GetReturnsLeafValues(t *testing.T) {
	require := require.New(t)
	witness := newTestWitness(t)
	for _, i := range []uint64{2, 6, 7} {
		got, err := witness.Get(idx(i))
		require.NoError(err)
		require.Equal(chunk(byte(i)), got)
	}
}

func TestWitness_GetReturnsHashesOfInnerNodes(t *testing.T) {
	require := require.New(t)
	witness := newTestWitness(t)
	got, err := witness.Get(idx(3))
	require.NoError(err)
	require.Equal(common.HashPair(chunk(6), chunk(7)), got)

	got, err = witness.Get(gindex.One())
	require.NoError(err)
	require.Equal(common.Chunk(witness.Root()), got)
}

func TestWitness_GetOfUncoveredIndexFails(t *testing.T) {
	witness := newTestWitness(t)
	for _, i := range []uint64{0, 4, 5, 12, 15, 1 << 40} {
		_, err := witness.Get(idx(i))
		require.ErrorIs(t, err, ErrIndexNotCovered, "index %d", i)
	}
}

func TestWitness_UpdateChangesValueAndRoot(t *testing.T) {
	require := require.New(t)
	witness := newTestWitness(t)
	before := witness.Root()

	require.NoError(witness.Update(idx(6), chunk(60)))
	got, err := witness.Get(idx(6))
	require.NoError(err)
	require.Equal(chunk(60), got)

	want := common.HashPair(chunk(2), common.HashPair(chunk(60), chunk(7)))
	require.Equal(common.Hash(want), witness.Root())
	require.NotEqual(before, witness.Root())

	inner, err := witness.Get(idx(3))
	require.NoError(err)
	require.Equal(common.HashPair(chunk(60), chunk(7)), inner)
}

func TestWitness_UpdateIsWrittenToUnderlyingBuffer(t *testing.T) {
	require := require.New(t)
	witness := newTestWitness(t)
	require.NoError(witness.Update(idx(7), chunk(70)))

	restored, err := proof.Decode(witness.Bytes())
	require.NoError(err)
	require.Equal([]common.Chunk{chunk(2), chunk(6), chunk(70)}, restored.Values)
}

func TestWitness_RepeatedUpdatesInvalidateCachedHashes(t *testing.T) {
	require := require.New(t)
	witness := newTestWitness(t)
	for i := range 10 {
		value := chunk(byte(100 + i))
		require.NoError(witness.Update(idx(2), value))
		require.NoError(witness.Update(idx(7), value))
		want := common.HashPair(value, common.HashPair(chunk(6), value))
		require.Equal(common.Hash(want), witness.Root())
	}
}

func TestWitness_UpdateOfInnerNodesOrUncoveredIndicesFails(t *testing.T) {
	witness := newTestWitness(t)
	root := witness.Root()
	for _, i := range []uint64{1, 3, 4, 14} {
		err := witness.Update(idx(i), chunk(1))
		require.ErrorIs(t, err, ErrIndexNotCovered, "index %d", i)
	}
	require.Equal(t, root, witness.Root())
}

func TestWitness_IndicesAreListedInCanonicalOrder(t *testing.T) {
	witness := newTestWitness(t)
	require.Equal(t, []gindex.Index{idx(2), idx(6), idx(7)}, witness.Indices())
}

func TestWitness_MalformedInputsAreRejected(t *testing.T) {
	valid := newTestWitness(t).Bytes()
	badShape := append([]byte{}, valid...)
	badShape[8] = 3

	tests := map[string][]byte{
		"empty":     nil,
		"truncated": valid[:len(valid)-1],
		"trailing":  append(append([]byte{}, valid...), 1),
		"bad shape": badShape,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewWitness(data)
			require.ErrorIs(t, err, ErrMalformedProof)
		})
	}
}
