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
	"golang.org/x/crypto/sha3"
)

// MaxTreeHeight is the maximum number of levels of zero-subtree hashes
// precomputed by ZeroHash.
const MaxTreeHeight = 264

var zeroHashes = func() [MaxTreeHeight + 1]Chunk {
	res := [MaxTreeHeight + 1]Chunk{}
	for i := 1; i < len(res); i++ {
		res[i] = HashPair(res[i-1], res[i-1])
	}
	return res
}()

// Keccak256 computes the Keccak256 hash of the given data.
func Keccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var res Hash
	hasher.Sum(res[:0])
	return res
}

// HashPair computes the value of an inner tree node from the values of its
// left and right children.
func HashPair(left, right Chunk) Chunk {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	var res Chunk
	hasher.Sum(res[:0])
	return res
}

// ZeroHash returns the value of the root of a subtree of the given height in
// which all leaves are zero. A height of zero refers to a single leaf. Heights
// beyond MaxTreeHeight panic.
func ZeroHash(height int) Chunk {
	return zeroHashes[height]
}
