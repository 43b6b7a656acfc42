// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package composer generates input blobs for testing and benchmarking. A
// generated blob contains random transactions between random accounts and a
// witness proof covering all these accounts.
package composer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/0xsoniclabs/stateless/go/database/witness/reference"
	"github.com/0xsoniclabs/stateless/go/database/witness/tree"
	"github.com/0xsoniclabs/stateless/go/state"
	"github.com/0xsoniclabs/stateless/go/transaction"
)

// ErrGenerator is returned if no valid blob can be generated.
var ErrGenerator = errors.New("failed to generate blob")

// Config describes the blob to be generated.
type Config struct {
	Accounts     int   // number of accounts, at least 1
	Transactions int   // number of transactions
	Height       uint  // height of the account section of the tree
	Seed         int64 // seed of the random number generator
}

// Blob is a generated input blob.
type Blob struct {
	Accounts     []Account
	Transactions []transaction.Transaction
	Proof        []byte
}

// Bytes produces the serialized form of the blob, the serialized
// transactions followed by the encoded proof.
func (b *Blob) Bytes() []byte {
	res := transaction.Serialize(b.Transactions)
	return append(res, b.Proof...)
}

// Generate creates a random blob according to the given configuration. The
// result only depends on the configuration.
func Generate(config Config) (*Blob, error) {
	if config.Accounts < 1 {
		return nil, fmt.Errorf("%w: at least one account is required", ErrGenerator)
	}
	rng := rand.New(rand.NewSource(config.Seed))
	accounts, err := RandomAccounts(rng, config.Accounts, config.Height)
	if err != nil {
		return nil, err
	}
	proof, err := Prove(accounts, config.Height)
	if err != nil {
		return nil, err
	}
	txs, err := RandomTransactions(rng, config.Transactions, accounts)
	if err != nil {
		return nil, err
	}
	return &Blob{
		Accounts:     accounts,
		Transactions: txs,
		Proof:        proof,
	}, nil
}

// GenerateWithRoots creates a random blob and computes the roots of the state
// before and after processing the blob's transactions.
func GenerateWithRoots(config Config) (*Blob, common.Hash, common.Hash, error) {
	blob, err := Generate(config)
	if err != nil {
		return nil, common.Hash{}, common.Hash{}, err
	}
	witness, err := tree.NewWitness(append([]byte{}, blob.Proof...))
	if err != nil {
		return nil, common.Hash{}, common.Hash{}, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	accounts, err := state.NewAccounts(witness, config.Height, nil)
	if err != nil {
		return nil, common.Hash{}, common.Hash{}, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	pre := accounts.Root()
	if err := transaction.Process(accounts, blob.Transactions); err != nil {
		return nil, common.Hash{}, common.Hash{}, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	return blob, pre, accounts.Root(), nil
}

// BuildTree creates a full tree containing the given accounts.
func BuildTree(accounts []Account, height uint) (*reference.Tree, error) {
	layout := state.FieldLayout{}
	full, err := reference.NewTree(layout.Depth(height))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	for i := range accounts {
		for field, chunk := range accounts[i].Chunks() {
			index := layout.Index(accounts[i].Address, height, state.Field(field))
			if err := full.Set(index, chunk); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrGenerator, err)
			}
		}
	}
	return full, nil
}

// Prove creates the encoded proof of the nonces and balances of the given
// accounts.
func Prove(accounts []Account, height uint) ([]byte, error) {
	full, err := BuildTree(accounts, height)
	if err != nil {
		return nil, err
	}
	layout := state.FieldLayout{}
	leaves := make([]gindex.Index, 0, 2*len(accounts))
	for i := range accounts {
		leaves = append(leaves,
			layout.Index(accounts[i].Address, height, state.NonceField),
			layout.Index(accounts[i].Address, height, state.ValueField),
		)
	}
	p, err := full.Prove(leaves...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	res, err := p.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerator, err)
	}
	return res, nil
}
