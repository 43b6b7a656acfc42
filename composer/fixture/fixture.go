// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fixture reads and writes test fixtures. A fixture bundles an input
// blob with the state roots before and after processing it.
//
// Fixtures are stored either as text, holding the hex-encoded pre-state root,
// post-state root, and blob separated by white space, or as CBOR document,
// optionally compressed using snappy.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
)

// DefaultHeight is the tree height assumed for fixtures not recording one.
const DefaultHeight = 256

// ErrMalformed is returned when decoding invalid fixture data.
var ErrMalformed = errors.New("malformed fixture")

// Fixture is an input blob with its expected pre- and post-state roots.
type Fixture struct {
	PreRoot  common.Hash
	PostRoot common.Hash
	Blob     []byte
	Height   uint
}

// ---- Text format ----

// ReadText parses a fixture in text format. The height of the resulting
// fixture is DefaultHeight.
func ReadText(in io.Reader) (*Fixture, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(data))
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformed, len(fields))
	}
	pre, err := common.ParseHash(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: pre-state root: %w", ErrMalformed, err)
	}
	post, err := common.ParseHash(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: post-state root: %w", ErrMalformed, err)
	}
	blob, err := common.ParseHex(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: blob: %w", ErrMalformed, err)
	}
	return &Fixture{
		PreRoot:  pre,
		PostRoot: post,
		Blob:     blob,
		Height:   DefaultHeight,
	}, nil
}

// WriteText writes the fixture in text format using unprefixed hex. The
// height is not recorded.
func WriteText(out io.Writer, fixture *Fixture) error {
	_, err := fmt.Fprintf(out, "%x %x %x\n", fixture.PreRoot[:], fixture.PostRoot[:], fixture.Blob)
	return err
}

// ---- CBOR format ----

type document struct {
	PreRoot  []byte `cbor:"1,keyasint"`
	PostRoot []byte `cbor:"2,keyasint"`
	Blob     []byte `cbor:"3,keyasint"`
	Height   uint64 `cbor:"4,keyasint"`
}

var (
	encMode = func() cbor.EncMode {
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			panic(fmt.Sprintf("invalid CBOR encoding options: %v", err))
		}
		return mode
	}()
	decMode = func() cbor.DecMode {
		mode, err := cbor.DecOptions{
			DupMapKey:         cbor.DupMapKeyEnforcedAPF,
			ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		}.DecMode()
		if err != nil {
			panic(fmt.Sprintf("invalid CBOR decoding options: %v", err))
		}
		return mode
	}()
)

// Encode produces the deterministic CBOR encoding of the fixture.
func Encode(fixture *Fixture) ([]byte, error) {
	return encMode.Marshal(document{
		PreRoot:  fixture.PreRoot[:],
		PostRoot: fixture.PostRoot[:],
		Blob:     fixture.Blob,
		Height:   uint64(fixture.Height),
	})
}

// Decode parses a CBOR encoded fixture.
func Decode(data []byte) (*Fixture, error) {
	var doc document
	if err := decMode.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.PreRoot) != len(common.Hash{}) || len(doc.PostRoot) != len(common.Hash{}) {
		return nil, fmt.Errorf("%w: invalid root length", ErrMalformed)
	}
	if doc.Height > DefaultHeight {
		return nil, fmt.Errorf("%w: unsupported height %d", ErrMalformed, doc.Height)
	}
	blob := doc.Blob
	if blob == nil {
		blob = []byte{}
	}
	return &Fixture{
		PreRoot:  common.Hash(doc.PreRoot),
		PostRoot: common.Hash(doc.PostRoot),
		Blob:     blob,
		Height:   uint(doc.Height),
	}, nil
}

// EncodeCompressed produces the snappy compressed CBOR encoding of the
// fixture.
func EncodeCompressed(fixture *Fixture) ([]byte, error) {
	data, err := Encode(fixture)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, data), nil
}

// DecodeCompressed parses a snappy compressed CBOR encoded fixture.
func DecodeCompressed(data []byte) (*Fixture, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return Decode(raw)
}

// ---- Files ----

const (
	cborSuffix       = ".cbor"
	compressedSuffix = ".cbor.sz"
)

// Load reads a fixture from the given file. The format is derived from the
// file name: files ending in .cbor.sz are compressed CBOR, files ending in
// .cbor are plain CBOR, all others text.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, compressedSuffix):
		return DecodeCompressed(data)
	case strings.HasSuffix(path, cborSuffix):
		return Decode(data)
	default:
		return ReadText(bytes.NewReader(data))
	}
}

// Save writes the fixture to the given file, using the format derived from
// the file name as described for Load.
func Save(path string, fixture *Fixture) (err error) {
	var data []byte
	switch {
	case strings.HasSuffix(path, compressedSuffix):
		data, err = EncodeCompressed(fixture)
	case strings.HasSuffix(path, cborSuffix):
		data, err = Encode(fixture)
	default:
		var buffer bytes.Buffer
		err = WriteText(&buffer, fixture)
		data = buffer.Bytes()
	}
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	_, err = file.Write(data)
	return err
}
