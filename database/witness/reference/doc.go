// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package reference provides a simple in-memory binary Merkle tree holding
// the complete state. It is used to produce witness proofs and to cross-check
// the roots computed from partial trees.
//
// This implementation is not optimized for performance or memory usage. It is
// not intended for production use.
package reference
