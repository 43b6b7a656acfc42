// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tree

//go:generate mockgen -source store.go -destination tree_mocks.go -package tree

import (
	"errors"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
)

var (
	// ErrIndexNotCovered is returned when accessing a node that is not part
	// of the partial tree.
	ErrIndexNotCovered = errors.New("index not covered by witness")
	// ErrMalformedProof is returned when the bytes a partial tree is built
	// from do not describe a valid proof.
	ErrMalformedProof = errors.New("malformed witness proof")
)

// Store is a partial view on a binary Merkle tree addressed by generalized
// indices. Only a subset of the tree's nodes is accessible.
type Store interface {
	// Get returns the value of the node with the given index. Accessing a
	// node not covered by the store results in ErrIndexNotCovered.
	Get(index gindex.Index) (common.Chunk, error)

	// Update replaces the value of a leaf node of the partial tree. The
	// root is updated accordingly.
	Update(index gindex.Index, value common.Chunk) error

	// Root computes the root hash of the tree.
	Root() common.Hash
}
