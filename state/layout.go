// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"errors"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/holiman/uint256"
)

// MaxHeight is the maximum height of the account section of the tree. Account
// subtrees are addressed by the low MaxHeight bits of addresses.
const MaxHeight = 256

// ErrUnsupportedHeight is returned for tree heights exceeding MaxHeight.
var ErrUnsupportedHeight = errors.New("unsupported tree height")

// FieldLayout places the subtree of an account at p = 2^height + (a mod 2^height)
// where a is the address interpreted as big-endian integer. The fields of the
// account are stored in the leaves 4p to 4p+3, in the order of the Field
// constants.
type FieldLayout struct{}

// AccountRoot returns the index of the root of the subtree of the given
// account.
func (FieldLayout) AccountRoot(address common.Address, height uint) gindex.Index {
	position := new(uint256.Int).SetBytes32(address[:])
	if height < MaxHeight {
		mask := new(uint256.Int).Lsh(uint256.NewInt(1), height)
		mask.SubUint64(mask, 1)
		position.And(position, mask)
	}
	return gindex.FromUint256(position).Or(gindex.One().Lsh(height))
}

func (l FieldLayout) Index(address common.Address, height uint, field Field) gindex.Index {
	return l.AccountRoot(address, height).Lsh(2).Or(gindex.FromUint8(uint8(field)))
}

func (FieldLayout) Depth(height uint) int {
	return int(height) + 2
}
