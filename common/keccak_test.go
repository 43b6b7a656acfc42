// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256_EmptyInputProducesKnownHash(t *testing.T) {
	want, err := ParseHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.NoError(t, err)
	require.Equal(t, want, Keccak256(nil))
}

func TestHashPair_MatchesKeccakOfConcatenation(t *testing.T) {
	left := Chunk{1, 2, 3}
	right := Chunk{31: 4}
	data := append(left[:], right[:]...)
	require.Equal(t, Chunk(Keccak256(data)), HashPair(left, right))
}

func TestZeroHash_LevelsAreHashesOfLowerLevels(t *testing.T) {
	require := require.New(t)
	require.Equal(Chunk{}, ZeroHash(0))
	for i := 1; i <= MaxTreeHeight; i++ {
		require.Equal(HashPair(ZeroHash(i-1), ZeroHash(i-1)), ZeroHash(i), "height %d", i)
	}
}
