// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package proof

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/stretchr/testify/require"
)

func toIndices(values ...uint64) []gindex.Index {
	res := make([]gindex.Index, len(values))
	for i, v := range values {
		res[i] = gindex.FromUint64(v)
	}
	return res
}

func TestCompress_KnownShapes(t *testing.T) {
	tests := []struct {
		indices []uint64
		offsets []uint64
	}{
		{indices: []uint64{1}, offsets: []uint64{1}},
		{indices: []uint64{2, 3}, offsets: []uint64{2, 1}},
		{indices: []uint64{4, 5, 3}, offsets: []uint64{3, 2, 1}},
		{indices: []uint64{2, 6, 7}, offsets: []uint64{3, 1, 1}},
		{indices: []uint64{16, 17, 9, 10, 11, 3}, offsets: []uint64{6, 5, 3, 2, 1, 1}},
		{indices: []uint64{2, 6, 14, 15}, offsets: []uint64{4, 1, 1, 1}},
		{indices: []uint64{4, 10, 11, 3}, offsets: []uint64{4, 3, 1, 1}},
		{
			indices: []uint64{2, 24, 25, 13, 56, 57, 58, 59, 15},
			offsets: []uint64{9, 1, 3, 2, 1, 4, 2, 1, 1},
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v", test.indices), func(t *testing.T) {
			require := require.New(t)
			offsets, err := Compress(toIndices(test.indices...))
			require.NoError(err)
			require.Equal(test.offsets, offsets)

			indices, err := Decompress(test.offsets)
			require.NoError(err)
			require.Equal(toIndices(test.indices...), indices)
		})
	}
}

func TestCompress_OffsetsHaveOneEntryPerIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 100 {
		indices := randomProofIndices(rng)
		offsets, err := Compress(indices)
		require.NoError(t, err)
		require.Len(t, offsets, len(indices))
		require.Equal(t, uint64(len(indices)), offsets[0])
	}
}

func TestCompress_RoundTripOfRandomShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 200 {
		indices := randomProofIndices(rng)
		offsets, err := Compress(indices)
		require.NoError(t, err)
		restored, err := Decompress(offsets)
		require.NoError(t, err)
		require.Equal(t, indices, restored)
	}
}

func TestCompress_DeepIndicesAreSupported(t *testing.T) {
	require := require.New(t)
	deep := gindex.One().Lsh(gindex.Bits - 1)
	indices := []gindex.Index{deep, deep.Sibling()}
	for cur := deep.Parent(); cur != gindex.One(); cur = cur.Parent() {
		indices = append(indices, cur.Sibling())
	}
	offsets, err := Compress(indices)
	require.NoError(err)
	require.Len(offsets, gindex.Bits)
	restored, err := Decompress(offsets)
	require.NoError(err)
	require.Equal(indices, restored)
}

func TestCompress_InvalidIndicesAreRejected(t *testing.T) {
	tests := map[string][]gindex.Index{
		"empty":             nil,
		"zero":              toIndices(0),
		"zero in list":      toIndices(2, 0, 3),
		"not sorted":        toIndices(3, 2),
		"duplicate":         toIndices(2, 2, 3),
		"ancestor":          toIndices(2, 4, 5, 3),
		"descendant":        toIndices(4, 5, 2, 3),
		"missing sibling":   toIndices(2),
		"left only":         toIndices(4, 5),
		"right only":        toIndices(6, 7),
		"deep missing":      toIndices(4, 3),
		"gap in left":       toIndices(8, 9, 3),
		"root with sibling": toIndices(1, 3),
	}
	for name, indices := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Compress(indices)
			require.ErrorIs(t, err, ErrInvalidIndices)
		})
	}
}

func TestDecompress_InvalidOffsetsAreRejected(t *testing.T) {
	tests := map[string][]uint64{
		"empty":             nil,
		"zero count":        {0},
		"too few offsets":   {2},
		"too many offsets":  {1, 5},
		"count mismatch":    {3, 1, 1, 1},
		"empty left":        {2, 0},
		"empty right":       {2, 2},
		"left too large":    {3, 7, 1},
		"inner empty left":  {3, 1, 0},
		"inner empty right": {3, 2, 2},
	}
	for name, offsets := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decompress(offsets)
			require.ErrorIs(t, err, ErrInvalidOffsets)
		})
	}
}

func TestDecompress_TreesExceedingMaximumDepthAreRejected(t *testing.T) {
	// A degenerate tree with one leaf per level, leaning to the left.
	n := uint64(gindex.Bits + 1)
	offsets := make([]uint64, n)
	offsets[0] = n
	for i := uint64(1); i < n; i++ {
		offsets[i] = n - i
	}
	_, err := Decompress(offsets)
	require.ErrorIs(t, err, ErrInvalidOffsets)
}

// randomProofIndices produces the proof indices for a random set of nodes.
func randomProofIndices(rng *rand.Rand) []gindex.Index {
	depth := 1 + rng.Intn(gindex.Bits-1)
	nodes := make([]gindex.Index, 1+rng.Intn(8))
	for i := range nodes {
		var node gindex.Index
		for j := range node {
			node[j] = byte(rng.Intn(256))
		}
		node = node.And(gindex.One().Lsh(uint(depth)).MustSub(gindex.One()))
		nodes[i] = node.Or(gindex.One().Lsh(uint(depth)))
	}
	res, err := Indices(nodes)
	if err != nil {
		panic(err)
	}
	return res
}
