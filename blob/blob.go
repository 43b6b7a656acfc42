// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package blob implements the processing of input blobs. A blob consists of
// a list of serialized transactions followed by an encoded witness proof of
// all accounts touched by the transactions.
package blob

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/database/witness/tree"
	"github.com/0xsoniclabs/stateless/go/state"
	"github.com/0xsoniclabs/stateless/go/transaction"
)

var (
	ErrPreRootMismatch  = errors.New("pre-state root mismatch")
	ErrPostRootMismatch = errors.New("post-state root mismatch")
)

// Blob is a decoded input blob. The witness operates directly on the proof
// section of the data it was decoded from.
type Blob struct {
	Transactions []transaction.Transaction
	Witness      *tree.Witness
}

// Decode splits the given data into transactions and witness. The data is
// owned by the resulting blob and modified when processing it.
func Decode(data []byte) (*Blob, error) {
	txs, rest, err := transaction.Deserialize(data)
	if err != nil {
		return nil, err
	}
	witness, err := tree.NewWitness(rest)
	if err != nil {
		return nil, err
	}
	return &Blob{Transactions: txs, Witness: witness}, nil
}

// Process applies the transactions of the blob to the state described by its
// witness and returns the resulting root. The root of the witness must match
// the given pre-state root.
func Process(data []byte, preRoot common.Hash, height uint) (common.Hash, error) {
	blob, err := Decode(data)
	if err != nil {
		return common.Hash{}, err
	}
	if got := blob.Witness.Root(); got != preRoot {
		return common.Hash{}, fmt.Errorf("%w: expected %v, got %v", ErrPreRootMismatch, preRoot, got)
	}
	accounts, err := state.NewAccounts(blob.Witness, height, nil)
	if err != nil {
		return common.Hash{}, err
	}
	if err := transaction.Process(accounts, blob.Transactions); err != nil {
		return common.Hash{}, err
	}
	return accounts.Root(), nil
}

// Verify processes the blob and checks the resulting root against the
// expected post-state root.
func Verify(data []byte, preRoot, postRoot common.Hash, height uint) error {
	got, err := Process(data, preRoot, height)
	if err != nil {
		return err
	}
	if got != postRoot {
		return fmt.Errorf("%w: expected %v, got %v", ErrPostRootMismatch, postRoot, got)
	}
	return nil
}
