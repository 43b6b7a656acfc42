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
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/common/gindex"
)

// ErrMalformed is returned when decoding a byte sequence that does not follow
// the proof layout.
var ErrMalformed = errors.New("malformed proof encoding")

const (
	offsetSize = 8
	entrySize  = offsetSize + common.ChunkSize
)

// Proof is a list of tree nodes and their values. Index i of Indices is
// associated to value i of Values.
type Proof struct {
	Indices []gindex.Index
	Values  []common.Chunk
}

// Len returns the number of nodes in the proof.
func (p Proof) Len() int {
	return len(p.Indices)
}

// EncodedSize returns the number of bytes of an encoded proof covering n nodes.
func EncodedSize(n int) int {
	return n * entrySize
}

// Encode produces the wire representation of the proof, the offsets encoding
// its indices followed by its values. The proof must be in canonical order.
func (p Proof) Encode() ([]byte, error) {
	if len(p.Indices) != len(p.Values) {
		return nil, fmt.Errorf("%w: %d indices but %d values", ErrMalformed, len(p.Indices), len(p.Values))
	}
	offsets, err := Compress(p.Indices)
	if err != nil {
		return nil, err
	}
	res := make([]byte, 0, EncodedSize(len(offsets)))
	for _, offset := range offsets {
		res = binary.LittleEndian.AppendUint64(res, offset)
	}
	for _, value := range p.Values {
		res = append(res, value[:]...)
	}
	return res, nil
}

// Decode parses an encoded proof. The resulting values are copies; the input
// is not retained.
func Decode(data []byte) (Proof, error) {
	offsets, values, err := Split(data)
	if err != nil {
		return Proof{}, err
	}
	indices, err := Decompress(offsets)
	if err != nil {
		return Proof{}, err
	}
	res := Proof{
		Indices: indices,
		Values:  make([]common.Chunk, len(indices)),
	}
	for i := range res.Values {
		res.Values[i] = common.Chunk(values[i*common.ChunkSize:])
	}
	return res, nil
}

// Split separates an encoded proof into its offsets and the section holding
// its values. The returned value section aliases the input.
func Split(data []byte) ([]uint64, []byte, error) {
	if len(data) < offsetSize {
		return nil, nil, fmt.Errorf("%w: %d bytes are too short", ErrMalformed, len(data))
	}
	n := binary.LittleEndian.Uint64(data)
	if n == 0 || len(data)%entrySize != 0 || uint64(len(data)/entrySize) != n {
		return nil, nil, fmt.Errorf("%w: %d bytes do not hold %d entries", ErrMalformed, len(data), n)
	}
	offsets := make([]uint64, n)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint64(data[i*offsetSize:])
	}
	return offsets, data[int(n)*offsetSize:], nil
}

// Sort brings the entries of the proof into canonical order.
func (p Proof) Sort() {
	sort.Sort(byCanonicalOrder(p))
}

type byCanonicalOrder Proof

func (p byCanonicalOrder) Len() int { return len(p.Indices) }

func (p byCanonicalOrder) Less(i, j int) bool {
	return Compare(p.Indices[i], p.Indices[j]) < 0
}

func (p byCanonicalOrder) Swap(i, j int) {
	p.Indices[i], p.Indices[j] = p.Indices[j], p.Indices[i]
	p.Values[i], p.Values[j] = p.Values[j], p.Values[i]
}
