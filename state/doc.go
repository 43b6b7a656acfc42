// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state provides access to the accounts stored in a binary Merkle
// tree. Each account occupies a subtree of four leaves, holding the two chunks
// of the account's public key, its nonce, and its balance. Scalar fields are
// stored as 64-bit little-endian integers in the low bytes of their leaf.
package state
