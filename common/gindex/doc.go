// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package gindex provides a 264-bit unsigned integer used to represent
// generalized indices of nodes in a binary Merkle tree. The root of a tree has
// index 1, and the children of node i are 2i and 2i+1.
//
// Trees addressed by 256-bit account addresses reach depths at which neither
// machine words nor 256-bit integers can hold a generalized index. The extra
// byte on top of 256 bits provides the head room needed to keep index
// arithmetic exact. All operations are carried out on a fixed layout of four
// 64-bit limbs followed by a single trailing byte and report overflows
// explicitly instead of truncating results.
package gindex
