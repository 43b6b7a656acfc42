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

import (
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/0xsoniclabs/stateless/go/database/witness/proof"
)

// Witness is a Store backed by an encoded proof. The proof's nodes form the
// leaves of the partial tree, their ancestors its inner nodes. Values are read
// from and written to the buffer the witness was created for, such that Bytes
// always reflects the current state of the partial tree.
type Witness struct {
	data    []byte
	values  []byte
	indices []gindex.Index
	leaves  map[gindex.Index]int
	inner   map[gindex.Index]*innerNode
}

type innerNode struct {
	hash  common.Chunk
	clean bool
}

// NewWitness creates a witness over the given encoded proof. The witness takes
// ownership of the buffer and modifies it on updates.
func NewWitness(data []byte) (*Witness, error) {
	offsets, values, err := proof.Split(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProof, err)
	}
	indices, err := proof.Decompress(offsets)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProof, err)
	}

	res := &Witness{
		data:    data,
		values:  values,
		indices: indices,
		leaves:  make(map[gindex.Index]int, len(indices)),
		inner:   make(map[gindex.Index]*innerNode, len(indices)),
	}
	for i, index := range indices {
		res.leaves[index] = i
		for cur := index.Parent(); !cur.IsZero(); cur = cur.Parent() {
			if _, found := res.inner[cur]; found {
				break
			}
			res.inner[cur] = &innerNode{}
		}
	}
	return res, nil
}

// Get returns the value of a leaf of the partial tree or the hash of one of
// its inner nodes.
func (w *Witness) Get(index gindex.Index) (common.Chunk, error) {
	if pos, found := w.leaves[index]; found {
		return w.value(pos), nil
	}
	if _, found := w.inner[index]; found {
		return w.hash(index), nil
	}
	return common.Chunk{}, fmt.Errorf("%w: %v", ErrIndexNotCovered, index)
}

// Update sets the value of a leaf of the partial tree. Inner nodes can not be
// updated.
func (w *Witness) Update(index gindex.Index, value common.Chunk) error {
	pos, found := w.leaves[index]
	if !found {
		return fmt.Errorf("%w: %v is not a leaf", ErrIndexNotCovered, index)
	}
	copy(w.values[pos*common.ChunkSize:], value[:])
	for cur := index.Parent(); !cur.IsZero(); cur = cur.Parent() {
		node := w.inner[cur]
		if !node.clean {
			break
		}
		node.clean = false
	}
	return nil
}

// Root returns the hash of the root of the partial tree.
func (w *Witness) Root() common.Hash {
	return common.Hash(w.hash(gindex.One()))
}

// Bytes returns the encoded proof the witness operates on, including all
// updates applied so far.
func (w *Witness) Bytes() []byte {
	return w.data
}

// Indices returns the indices of the leaves of the partial tree in canonical
// order.
func (w *Witness) Indices() []gindex.Index {
	res := make([]gindex.Index, len(w.indices))
	copy(res, w.indices)
	return res
}

func (w *Witness) value(pos int) common.Chunk {
	return common.Chunk(w.values[pos*common.ChunkSize:])
}

func (w *Witness) hash(index gindex.Index) common.Chunk {
	if pos, found := w.leaves[index]; found {
		return w.value(pos)
	}
	node := w.inner[index]
	if node.clean {
		return node.hash
	}
	node.hash = common.HashPair(w.hash(index.Left()), w.hash(index.Right()))
	node.clean = true
	return node.hash
}
