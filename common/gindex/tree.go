// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gindex

// This file provides navigation helpers interpreting indices as generalized
// indices of binary tree nodes.

// Depth returns the depth of the node with generalized index x, where the
// root is at depth 0. The depth of the invalid index 0 is -1.
func (x Index) Depth() int {
	return x.BitLen() - 1
}

// Parent returns the index of the parent node. The parent of the root is 0.
func (x Index) Parent() Index {
	return x.Rsh(1)
}

// Left returns the index of the left child. The result is only meaningful if
// the depth of x is less than Bits-1.
func (x Index) Left() Index {
	return x.Lsh(1)
}

// Right returns the index of the right child. The result is only meaningful if
// the depth of x is less than Bits-1.
func (x Index) Right() Index {
	res := x.Lsh(1)
	res[0] |= 1
	return res
}

// Sibling returns the index of the node sharing the same parent.
func (x Index) Sibling() Index {
	x[0] ^= 1
	return x
}

// IsLeft reports whether x is the left child of its parent.
func (x Index) IsLeft() bool {
	return x[0]&1 == 0
}

// Ancestor returns the ancestor of x at the given depth. If the depth is
// larger than the depth of x, x itself is returned.
func (x Index) Ancestor(depth int) Index {
	own := x.Depth()
	if depth >= own {
		return x
	}
	return x.Rsh(uint(own - depth))
}
