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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/database/witness/tree"
)

// ErrOverflow is returned if an update of an account field would exceed the
// range of a 64-bit unsigned integer, in either direction.
var ErrOverflow = errors.New("account field overflow")

// Accounts implements State on top of a tree store.
type Accounts struct {
	store  tree.Store
	height uint
	layout Layout
}

var _ State = (*Accounts)(nil)

// NewAccounts creates a view on the accounts of a tree whose account subtrees
// are located at the given height. If layout is nil, FieldLayout is used.
func NewAccounts(store tree.Store, height uint, layout Layout) (*Accounts, error) {
	if height > MaxHeight {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrUnsupportedHeight, height, MaxHeight)
	}
	if layout == nil {
		layout = FieldLayout{}
	}
	return &Accounts{
		store:  store,
		height: height,
		layout: layout,
	}, nil
}

// Value returns the balance of the given account.
func (a *Accounts) Value(address common.Address) (uint64, error) {
	return a.read(address, ValueField)
}

// Nonce returns the nonce of the given account.
func (a *Accounts) Nonce(address common.Address) (uint64, error) {
	return a.read(address, NonceField)
}

// AddValue increases the balance of the given account and returns the new
// balance.
func (a *Accounts) AddValue(address common.Address, amount uint64) (uint64, error) {
	return a.modify(address, ValueField, func(value uint64) (uint64, bool) {
		res := value + amount
		return res, res >= value
	})
}

// SubValue decreases the balance of the given account and returns the new
// balance.
func (a *Accounts) SubValue(address common.Address, amount uint64) (uint64, error) {
	return a.modify(address, ValueField, func(value uint64) (uint64, bool) {
		return value - amount, amount <= value
	})
}

// IncNonce increments the nonce of the given account and returns the new
// nonce.
func (a *Accounts) IncNonce(address common.Address) (uint64, error) {
	return a.modify(address, NonceField, func(value uint64) (uint64, bool) {
		return value + 1, value < ^uint64(0)
	})
}

// Root returns the root hash of the underlying tree.
func (a *Accounts) Root() common.Hash {
	return a.store.Root()
}

func (a *Accounts) read(address common.Address, field Field) (uint64, error) {
	index := a.layout.Index(address, a.height, field)
	chunk, err := a.store.Get(index)
	if err != nil {
		return 0, fmt.Errorf("failed to read %v of account %v: %w", field, address, err)
	}
	return Decode(chunk), nil
}

// modify performs a read-modify-write cycle on the given field. The field is
// only written if update reports success.
func (a *Accounts) modify(address common.Address, field Field, update func(uint64) (uint64, bool)) (uint64, error) {
	index := a.layout.Index(address, a.height, field)
	chunk, err := a.store.Get(index)
	if err != nil {
		return 0, fmt.Errorf("failed to read %v of account %v: %w", field, address, err)
	}
	value, ok := update(Decode(chunk))
	if !ok {
		return 0, fmt.Errorf("%w: %v of account %v", ErrOverflow, field, address)
	}
	if err := a.store.Update(index, Encode(value)); err != nil {
		return 0, fmt.Errorf("failed to write %v of account %v: %w", field, address, err)
	}
	return value, nil
}

// Decode interprets the low 8 bytes of a leaf as little-endian integer.
func Decode(chunk common.Chunk) uint64 {
	return binary.LittleEndian.Uint64(chunk[:8])
}

// Encode produces the leaf value of a scalar field.
func Encode(value uint64) common.Chunk {
	var res common.Chunk
	binary.LittleEndian.PutUint64(res[:8], value)
	return res
}
