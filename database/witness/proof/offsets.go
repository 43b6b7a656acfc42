// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package proof

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common/gindex"
)

var (
	ErrInvalidIndices = errors.New("invalid proof indices")
	ErrInvalidOffsets = errors.New("invalid proof offsets")
)

// Compress computes the offsets encoding the given proof indices. The indices
// must be listed in canonical order and describe a tree in which every node
// has zero or two children.
func Compress(indices []gindex.Index) ([]uint64, error) {
	if err := checkCanonical(indices); err != nil {
		return nil, err
	}
	res := make([]uint64, 0, len(indices))
	res = append(res, uint64(len(indices)))
	return compress(gindex.One(), indices, res)
}

func compress(node gindex.Index, indices []gindex.Index, res []uint64) ([]uint64, error) {
	if len(indices) == 1 {
		if indices[0] != node {
			return nil, fmt.Errorf("%w: sibling of %v not covered", ErrInvalidIndices, indices[0].Ancestor(node.Depth()+1))
		}
		return res, nil
	}

	// In canonical order, all indices of the left subtree form a prefix.
	left := node.Left()
	depth := left.Depth()
	split := 0
	for split < len(indices) && indices[split].Ancestor(depth) == left {
		split++
	}
	if split == 0 || split == len(indices) {
		return nil, fmt.Errorf("%w: only one child of node %v covered", ErrInvalidIndices, node)
	}

	res = append(res, uint64(split))
	res, err := compress(left, indices[:split], res)
	if err != nil {
		return nil, err
	}
	return compress(node.Right(), indices[split:], res)
}

func checkCanonical(indices []gindex.Index) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: empty index list", ErrInvalidIndices)
	}
	for i, index := range indices {
		if index.IsZero() {
			return fmt.Errorf("%w: zero index at position %d", ErrInvalidIndices, i)
		}
		if i == 0 {
			continue
		}
		prev := indices[i-1]
		if IsAncestor(prev, index) || IsAncestor(index, prev) {
			return fmt.Errorf("%w: %v and %v are on the same path", ErrInvalidIndices, prev, index)
		}
		if Compare(prev, index) > 0 {
			return fmt.Errorf("%w: %v listed before %v", ErrInvalidIndices, prev, index)
		}
	}
	return nil
}

// Decompress recovers the proof indices from their offsets encoding. It is
// the inverse of Compress.
func Decompress(offsets []uint64) ([]gindex.Index, error) {
	if len(offsets) == 0 || offsets[0] == 0 {
		return nil, fmt.Errorf("%w: no indices", ErrInvalidOffsets)
	}
	if offsets[0] != uint64(len(offsets)) {
		return nil, fmt.Errorf("%w: %d offsets for %d indices", ErrInvalidOffsets, len(offsets), offsets[0])
	}
	d := decoder{
		offsets: offsets,
		next:    1,
		res:     make([]gindex.Index, 0, len(offsets)),
	}
	if err := d.decode(gindex.One(), offsets[0]); err != nil {
		return nil, err
	}
	return d.res, nil
}

type decoder struct {
	offsets []uint64
	next    int
	res     []gindex.Index
}

func (d *decoder) decode(node gindex.Index, count uint64) error {
	if count == 1 {
		d.res = append(d.res, node)
		return nil
	}
	if d.next >= len(d.offsets) {
		return fmt.Errorf("%w: missing offset for node %v", ErrInvalidOffsets, node)
	}
	left := d.offsets[d.next]
	d.next++
	if left == 0 || left >= count {
		return fmt.Errorf("%w: node %v with %d indices can not have %d on the left", ErrInvalidOffsets, node, count, left)
	}
	if node.Depth() >= gindex.Bits-1 {
		return fmt.Errorf("%w: tree exceeds maximum depth", ErrInvalidOffsets)
	}
	if err := d.decode(node.Left(), left); err != nil {
		return err
	}
	return d.decode(node.Right(), count-left)
}
