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
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Address identifies an account. Beyond serving as input for the mapping of
// accounts to tree positions, its content is opaque.
type Address [32]byte

// Hash is a 32-byte Keccak256 digest, used for tree node hashes and roots.
type Hash [32]byte

// Chunk is the 32-byte value of a tree node. Leaves hold encoded account
// fields, inner nodes hold the hash of their children.
type Chunk [32]byte

// ChunkSize is the number of bytes of a single tree node value.
const ChunkSize = 32

func (a Address) String() string {
	return hexutil.Encode(a[:])
}

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

func (c Chunk) String() string {
	return hexutil.Encode(c[:])
}

// ParseHash parses a 32-byte hash from its hex representation. The 0x prefix
// is optional.
func ParseHash(s string) (Hash, error) {
	data, err := ParseHex(s)
	if err != nil {
		return Hash{}, err
	}
	if len(data) != len(Hash{}) {
		return Hash{}, fmt.Errorf("invalid hash length, wanted %d bytes, got %d", len(Hash{}), len(data))
	}
	return Hash(data), nil
}

// ParseHex decodes a hex string into bytes. Unlike hexutil.Decode, the 0x
// prefix is optional.
func ParseHex(s string) ([]byte, error) {
	if !has0xPrefix(s) {
		s = "0x" + s
	}
	if s == "0x" {
		return []byte{}, nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
