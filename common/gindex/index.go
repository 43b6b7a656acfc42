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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// Size is the number of bytes of an Index.
	Size = 33
	// Bits is the number of bits of an Index.
	Bits = Size * 8
)

var (
	ErrOverflow  = errors.New("gindex: addition overflow")
	ErrUnderflow = errors.New("gindex: subtraction underflow")
)

// Index is a 264-bit unsigned integer stored in little-endian byte order. The
// first 32 bytes form four 64-bit limbs, the last byte forms the most
// significant part of the value. Index values are immutable; all operations
// produce new values.
type Index [Size]byte

// Zero returns the index with value 0.
func Zero() Index {
	return Index{}
}

// One returns the index with value 1, the generalized index of a tree root.
func One() Index {
	return Index{0: 1}
}

// Max returns the largest value representable by an Index, 2^264-1.
func Max() Index {
	var res Index
	for i := range res {
		res[i] = 0xff
	}
	return res
}

// FromUint8 creates an index by zero-extending the given byte.
func FromUint8(value uint8) Index {
	return Index{0: value}
}

// FromUint64 creates an index by zero-extending the given value.
func FromUint64(value uint64) Index {
	var res Index
	binary.LittleEndian.PutUint64(res[:8], value)
	return res
}

// FromBytes32 interprets the given bytes as a little-endian 256-bit value and
// zero-extends it to an index.
func FromBytes32(data [32]byte) Index {
	var res Index
	copy(res[:32], data[:])
	return res
}

// FromBytes interprets the given bytes as a little-endian 264-bit value.
func FromBytes(data [Size]byte) Index {
	return Index(data)
}

// FromUint256 zero-extends the given 256-bit value to an index.
func FromUint256(value *uint256.Int) Index {
	return fromLimbs([4]uint64(*value), 0)
}

// Bytes returns the little-endian representation of the index.
func (x Index) Bytes() [Size]byte {
	return x
}

// Bytes32 returns the low 256 bits of the index in little-endian order. The
// most significant byte is dropped.
func (x Index) Bytes32() [32]byte {
	return [32]byte(x[:32])
}

// Uint256 returns the low 256 bits of the index. The second result is true if
// the index does not fit into 256 bits.
func (x Index) Uint256() (*uint256.Int, bool) {
	limbs, top := x.limbs()
	res := uint256.Int(limbs)
	return &res, top != 0
}

// Uint64 returns the low 64 bits of the index.
func (x Index) Uint64() uint64 {
	return binary.LittleEndian.Uint64(x[:8])
}

// IsUint64 reports whether the index fits into 64 bits.
func (x Index) IsUint64() bool {
	return x.BitLen() <= 64
}

func (x Index) limbs() ([4]uint64, uint8) {
	return [4]uint64{
		binary.LittleEndian.Uint64(x[0:8]),
		binary.LittleEndian.Uint64(x[8:16]),
		binary.LittleEndian.Uint64(x[16:24]),
		binary.LittleEndian.Uint64(x[24:32]),
	}, x[32]
}

func fromLimbs(limbs [4]uint64, top uint8) Index {
	var res Index
	binary.LittleEndian.PutUint64(res[0:8], limbs[0])
	binary.LittleEndian.PutUint64(res[8:16], limbs[1])
	binary.LittleEndian.PutUint64(res[16:24], limbs[2])
	binary.LittleEndian.PutUint64(res[24:32], limbs[3])
	res[32] = top
	return res
}

// OverflowingAdd computes x+y modulo 2^264. The second result is true if the
// addition carried out of the most significant byte.
func (x Index) OverflowingAdd(y Index) (Index, bool) {
	a, aTop := x.limbs()
	b, bTop := y.limbs()

	var res [4]uint64
	var carry uint64
	for i := range res {
		res[i], carry = bits.Add64(a[i], b[i], carry)
	}

	top := aTop + bTop
	overflow := top < aTop
	withCarry := top + uint8(carry)
	overflow = overflow || withCarry < top
	return fromLimbs(res, withCarry), overflow
}

// OverflowingSub computes x-y modulo 2^264. The second result is true if the
// subtraction borrowed beyond the most significant byte, i.e. if y > x.
func (x Index) OverflowingSub(y Index) (Index, bool) {
	a, aTop := x.limbs()
	b, bTop := y.limbs()

	var res [4]uint64
	var borrow uint64
	for i := range res {
		res[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}

	top := aTop - bTop
	underflow := aTop < bTop
	withBorrow := top - uint8(borrow)
	underflow = underflow || top < uint8(borrow)
	return fromLimbs(res, withBorrow), underflow
}

// Add computes x+y, failing with ErrOverflow if the result exceeds 264 bits.
func (x Index) Add(y Index) (Index, error) {
	res, overflow := x.OverflowingAdd(y)
	if overflow {
		return Index{}, fmt.Errorf("%w: %v + %v", ErrOverflow, x, y)
	}
	return res, nil
}

// Sub computes x-y, failing with ErrUnderflow if y > x.
func (x Index) Sub(y Index) (Index, error) {
	res, underflow := x.OverflowingSub(y)
	if underflow {
		return Index{}, fmt.Errorf("%w: %v - %v", ErrUnderflow, x, y)
	}
	return res, nil
}

// MustAdd is like Add but panics on overflow.
func (x Index) MustAdd(y Index) Index {
	res, err := x.Add(y)
	if err != nil {
		panic(err)
	}
	return res
}

// MustSub is like Sub but panics on underflow.
func (x Index) MustSub(y Index) Index {
	res, err := x.Sub(y)
	if err != nil {
		panic(err)
	}
	return res
}

// Lsh shifts the index n bits towards the most significant end. Bits shifted
// beyond the 264-bit range are dropped; shifting by 264 or more yields zero.
func (x Index) Lsh(n uint) Index {
	if n >= Bits {
		return Index{}
	}
	byteShift := int(n / 8)
	bitShift := n % 8

	var res Index
	for i := Size - 1; i >= byteShift; i-- {
		v := x[i-byteShift] << bitShift
		if bitShift > 0 && i-byteShift >= 1 {
			v |= x[i-byteShift-1] >> (8 - bitShift)
		}
		res[i] = v
	}
	return res
}

// Rsh shifts the index n bits towards the least significant end. Shifting by
// 264 or more yields zero.
func (x Index) Rsh(n uint) Index {
	if n >= Bits {
		return Index{}
	}
	byteShift := int(n / 8)
	bitShift := n % 8

	var res Index
	for i := 0; i+byteShift < Size; i++ {
		v := x[i+byteShift] >> bitShift
		if bitShift > 0 && i+byteShift+1 < Size {
			v |= x[i+byteShift+1] << (8 - bitShift)
		}
		res[i] = v
	}
	return res
}

// And computes the bitwise conjunction of x and y.
func (x Index) And(y Index) Index {
	a, aTop := x.limbs()
	b, bTop := y.limbs()
	return fromLimbs([4]uint64{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}, aTop&bTop)
}

// Or computes the bitwise disjunction of x and y.
func (x Index) Or(y Index) Index {
	a, aTop := x.limbs()
	b, bTop := y.limbs()
	return fromLimbs([4]uint64{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}, aTop|bTop)
}

// Not computes the bitwise complement of x.
func (x Index) Not() Index {
	a, aTop := x.limbs()
	return fromLimbs([4]uint64{^a[0], ^a[1], ^a[2], ^a[3]}, ^aTop)
}

// Eq reports whether x and y are equal. Limbs are compared starting from the
// most significant one.
func (x Index) Eq(y Index) bool {
	a, aTop := x.limbs()
	b, bTop := y.limbs()
	if aTop != bTop {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Cmp compares x and y numerically, returning -1 if x < y, 0 if x == y, and
// +1 if x > y.
func (x Index) Cmp(y Index) int {
	a, aTop := x.limbs()
	b, bTop := y.limbs()
	if aTop != bTop {
		if aTop < bTop {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether x < y.
func (x Index) Less(y Index) bool {
	return x.Cmp(y) < 0
}

// IsZero reports whether x is zero.
func (x Index) IsZero() bool {
	return x == Index{}
}

// BitLen returns the minimum number of bits required to represent x.
func (x Index) BitLen() int {
	limbs, top := x.limbs()
	if top != 0 {
		return 256 + bits.Len8(top)
	}
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return i*64 + bits.Len64(limbs[i])
		}
	}
	return 0
}

// String formats the index as a hexadecimal number with a 0x prefix.
func (x Index) String() string {
	var be [Size]byte
	for i := range x {
		be[Size-1-i] = x[i]
	}
	digits := strings.TrimLeft(fmt.Sprintf("%x", be[:]), "0")
	if digits == "" {
		digits = "0"
	}
	return "0x" + digits
}
