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
	"cmp"
	"fmt"
	"slices"

	"github.com/0xsoniclabs/stateless/go/common/gindex"
)

// Compare orders generalized indices canonically, i.e. in the order in which
// a depth-first, left-to-right walk of the tree visits them. Ancestors are
// visited before their descendants. The result is -1 if a comes before b, 0 if
// they are equal, and +1 otherwise.
func Compare(a, b gindex.Index) int {
	da, db := a.Depth(), b.Depth()
	x, y := a, b
	if da > db {
		x = a.Rsh(uint(da - db))
	} else if db > da {
		y = b.Rsh(uint(db - da))
	}
	if c := x.Cmp(y); c != 0 {
		return c
	}
	return cmp.Compare(da, db)
}

// IsAncestor reports whether node a is a proper ancestor of node b.
func IsAncestor(a, b gindex.Index) bool {
	da, db := a.Depth(), b.Depth()
	if da < 0 || da >= db {
		return false
	}
	return b.Rsh(uint(db-da)) == a
}

// Indices computes the canonically ordered proof indices required to
// authenticate the given tree nodes. The result contains the nodes themselves
// and, for every node on their paths to the root, the siblings not derivable
// from other proof indices. Duplicates in the input are ignored.
func Indices(nodes []gindex.Index) ([]gindex.Index, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes to prove", ErrInvalidIndices)
	}
	targets := map[gindex.Index]struct{}{}
	for _, node := range nodes {
		if node.IsZero() {
			return nil, fmt.Errorf("%w: zero index", ErrInvalidIndices)
		}
		targets[node] = struct{}{}
	}

	// Collect all nodes on paths from targets to the root.
	onPath := map[gindex.Index]struct{}{}
	for node := range targets {
		for cur := node.Parent(); !cur.IsZero(); cur = cur.Parent() {
			if _, found := targets[cur]; found {
				return nil, fmt.Errorf("%w: %v is an ancestor of %v", ErrInvalidIndices, cur, node)
			}
			if _, found := onPath[cur]; found {
				break
			}
			onPath[cur] = struct{}{}
		}
	}

	res := make([]gindex.Index, 0, len(targets)+len(onPath))
	for node := range targets {
		res = append(res, node)
	}
	known := func(x gindex.Index) bool {
		_, isTarget := targets[x]
		_, isPath := onPath[x]
		return isTarget || isPath
	}
	for node := range targets {
		if node != gindex.One() && !known(node.Sibling()) {
			res = append(res, node.Sibling())
		}
	}
	for node := range onPath {
		if node != gindex.One() && !known(node.Sibling()) {
			res = append(res, node.Sibling())
		}
	}
	slices.SortFunc(res, Compare)
	return res, nil
}
