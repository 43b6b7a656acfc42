// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package composer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/0xsoniclabs/stateless/go/state"
)

// PublicKeySize is the length of an account's public key in bytes.
const PublicKeySize = 48

// Account is the full content of an account of the generated state.
type Account struct {
	Address   common.Address
	PublicKey [PublicKeySize]byte
	Nonce     uint64
	Value     uint64
}

// Chunks returns the leaf values of the account subtree in the order of the
// state.Field constants.
func (a *Account) Chunks() [4]common.Chunk {
	var res [4]common.Chunk
	copy(res[state.PublicKeyLow][:], a.PublicKey[:common.ChunkSize])
	copy(res[state.PublicKeyHigh][:], a.PublicKey[common.ChunkSize:])
	res[state.NonceField] = state.Encode(a.Nonce)
	res[state.ValueField] = state.Encode(a.Value)
	return res
}

// RandomAccounts creates the given number of accounts with random keys and
// balances. All accounts are located in distinct subtrees of a tree with
// account subtrees at the given height. Balances are chosen such that their
// total does not exceed the range of a 64-bit integer.
func RandomAccounts(rng *rand.Rand, count int, height uint) ([]Account, error) {
	if height > state.MaxHeight {
		return nil, fmt.Errorf("%w: %w", ErrGenerator, state.ErrUnsupportedHeight)
	}
	if count < 0 || (height < 63 && uint64(count) > uint64(1)<<height) {
		return nil, fmt.Errorf("%w: can not place %d accounts in a tree of height %d", ErrGenerator, count, height)
	}

	layout := state.FieldLayout{}
	maxValue := uint64(math.MaxUint64)
	if count > 0 {
		maxValue /= uint64(count)
	}
	used := make(map[gindex.Index]struct{}, count)
	res := make([]Account, 0, count)
	for len(res) < count {
		var account Account
		rng.Read(account.Address[:])
		position := layout.AccountRoot(account.Address, height)
		if _, found := used[position]; found {
			continue
		}
		used[position] = struct{}{}
		rng.Read(account.PublicKey[:])
		account.Value = randomAmount(rng, maxValue)
		res = append(res, account)
	}
	return res, nil
}

// randomAmount returns a random value in the range [0, max].
func randomAmount(rng *rand.Rand, max uint64) uint64 {
	if max == math.MaxUint64 {
		return rng.Uint64()
	}
	return rng.Uint64() % (max + 1)
}
