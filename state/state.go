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

//go:generate mockgen -source state.go -destination state_mocks.go -package state

import (
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
)

// State is the interface of account state transitions.
type State interface {
	Value(address common.Address) (uint64, error)
	Nonce(address common.Address) (uint64, error)
	AddValue(address common.Address, amount uint64) (uint64, error)
	SubValue(address common.Address, amount uint64) (uint64, error)
	IncNonce(address common.Address) (uint64, error)
	Root() common.Hash
}

// Field enumerates the leaves of an account subtree.
type Field uint8

const (
	PublicKeyLow Field = iota
	PublicKeyHigh
	NonceField
	ValueField
	numFields
)

func (f Field) String() string {
	switch f {
	case PublicKeyLow:
		return "public-key-low"
	case PublicKeyHigh:
		return "public-key-high"
	case NonceField:
		return "nonce"
	case ValueField:
		return "value"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// Layout maps account fields to the generalized indices of the tree leaves
// storing them. Distinct address/field pairs within the address range of a
// tree must be mapped to distinct leaves.
type Layout interface {
	// Index returns the index of the leaf holding the given field of the
	// given account in a tree with account subtrees at the given height.
	Index(address common.Address, height uint, field Field) gindex.Index
	// Depth returns the depth of the leaves of a tree with account subtrees
	// at the given height.
	Depth(height uint) int
}
