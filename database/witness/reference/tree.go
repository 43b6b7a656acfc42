// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package reference

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
	"github.com/0xsoniclabs/stateless/go/database/witness/proof"
)

// ErrOutOfRange is returned when addressing a node outside of the tree.
var ErrOutOfRange = errors.New("index out of range")

// Tree is a sparse binary Merkle tree of fixed depth. All leaves are located
// at the same depth. Subtrees that have never been written are implicitly
// filled with zero leaves.
type Tree struct {
	depth int
	root  node
}

// NewTree creates an empty tree with leaves at the given depth.
func NewTree(depth int) (*Tree, error) {
	if depth < 0 || depth >= gindex.Bits {
		return nil, fmt.Errorf("%w: unsupported depth %d", ErrOutOfRange, depth)
	}
	return &Tree{depth: depth}, nil
}

// Depth returns the depth of the leaves of the tree.
func (t *Tree) Depth() int {
	return t.depth
}

// Get returns the value of a leaf or the hash of an inner node.
func (t *Tree) Get(index gindex.Index) (common.Chunk, error) {
	target := index.Depth()
	if target < 0 || target > t.depth {
		return common.Chunk{}, fmt.Errorf("%w: %v not in tree of depth %d", ErrOutOfRange, index, t.depth)
	}
	if t.root == nil {
		return common.ZeroHash(t.depth - target), nil
	}
	return t.root.get(index, 0, target, t.depth), nil
}

// Set updates the value of the leaf with the given index.
func (t *Tree) Set(index gindex.Index, value common.Chunk) error {
	if index.Depth() != t.depth {
		return fmt.Errorf("%w: %v is not a leaf of a tree of depth %d", ErrOutOfRange, index, t.depth)
	}
	if t.root == nil {
		t.root = newNode(t.depth)
	}
	t.root = t.root.set(index, 0, t.depth, value)
	return nil
}

// Root computes the root hash of the tree.
func (t *Tree) Root() common.Hash {
	if t.root == nil {
		return common.Hash(common.ZeroHash(t.depth))
	}
	return common.Hash(t.root.hash(t.depth))
}

// Prove creates a proof for the given nodes of the tree. The proof lists the
// nodes and all sibling hashes needed to recompute the root in canonical order.
func (t *Tree) Prove(nodes ...gindex.Index) (proof.Proof, error) {
	indices, err := proof.Indices(nodes)
	if err != nil {
		return proof.Proof{}, err
	}
	values := make([]common.Chunk, len(indices))
	for i, index := range indices {
		values[i], err = t.Get(index)
		if err != nil {
			return proof.Proof{}, err
		}
	}
	return proof.Proof{Indices: indices, Values: values}, nil
}

// ---- Nodes ----

// node is the interface of the non-empty nodes of the tree. Empty subtrees
// are represented by nil.
type node interface {
	get(index gindex.Index, depth, target, height int) common.Chunk
	set(index gindex.Index, depth, height int, value common.Chunk) node
	hash(height int) common.Chunk
}

func newNode(height int) node {
	if height == 0 {
		return &leaf{}
	}
	return &inner{}
}

// childPosition returns 0 if the path to the node with the given index
// continues to the left child of its ancestor at the given depth, 1 otherwise.
func childPosition(index gindex.Index, depth, target int) int {
	return int(index.Rsh(uint(target-depth-1))[0] & 1)
}

// ---- Inner nodes ----

type inner struct {
	children [2]node

	// The cached hash of this node, only valid if hashClean is true.
	hashValue common.Chunk
	hashClean bool
}

func (i *inner) get(index gindex.Index, depth, target, height int) common.Chunk {
	if depth == target {
		return i.hash(height)
	}
	next := i.children[childPosition(index, depth, target)]
	if next == nil {
		return common.ZeroHash(height - (target - depth))
	}
	return next.get(index, depth+1, target, height-1)
}

func (i *inner) set(index gindex.Index, depth, height int, value common.Chunk) node {
	i.hashClean = false
	pos := childPosition(index, depth, depth+height)
	next := i.children[pos]
	if next == nil {
		next = newNode(height - 1)
	}
	i.children[pos] = next.set(index, depth+1, height-1, value)
	return i
}

func (i *inner) hash(height int) common.Chunk {
	if i.hashClean {
		return i.hashValue
	}
	var children [2]common.Chunk
	for j, child := range i.children {
		if child == nil {
			children[j] = common.ZeroHash(height - 1)
		} else {
			children[j] = child.hash(height - 1)
		}
	}
	i.hashValue = common.HashPair(children[0], children[1])
	i.hashClean = true
	return i.hashValue
}

// ---- Leaf nodes ----

type leaf struct {
	value common.Chunk
}

func (l *leaf) get(gindex.Index, int, int, int) common.Chunk {
	return l.value
}

func (l *leaf) set(_ gindex.Index, _, _ int, value common.Chunk) node {
	l.value = value
	return l
}

func (l *leaf) hash(int) common.Chunk {
	return l.value
}
