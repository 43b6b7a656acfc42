// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package proof implements the compact wire format of witness proofs.
//
// A proof is an ordered list of (generalized index, 32-byte value) pairs
// sufficient to recompute the root of a binary Merkle tree. Proof indices are
// listed in canonical order, a depth-first, left-to-right walk of the minimal
// binary tree spanned by the indices. Every node of this spanned tree has
// either zero children (it is a proof index) or two children.
//
// Instead of transmitting the 33-byte generalized indices, the shape of the
// spanned tree is encoded as a list of 64-bit offsets:
//
//	offsets[0] = number of proof indices N
//	offsets[k] = number of proof indices in the left subtree of the k-th
//	             inner node of the spanned tree, in pre-order (1 <= k < N)
//
// A tree with N leaves has N-1 inner nodes, so there is exactly one offset per
// index. For instance, the indices [16 17 9 10 11 3] are encoded as the offsets
// [6 5 3 2 1 1]. The encoded proof is the list of offsets, each as 8-byte
// little-endian integer, followed by the values in the order of the indices.
package proof
