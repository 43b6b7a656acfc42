// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package transaction

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/state"
)

// ErrMalformed is returned when decoding transactions from invalid input.
var ErrMalformed = errors.New("malformed transaction encoding")

const (
	// SignatureSize is the length of a transaction signature in bytes.
	SignatureSize = 96
	// EncodedSize is the length of a serialized transaction in bytes.
	EncodedSize = 32 + 32 + 8 + 8 + SignatureSize

	countSize = 4
)

// Transaction transfers an amount of tokens between two accounts. Signatures
// are carried along but not verified.
type Transaction struct {
	To        common.Address
	From      common.Address
	Nonce     uint64
	Amount    uint64
	Signature [SignatureSize]byte
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%v -> %v: %d (nonce %d)", t.From, t.To, t.Amount, t.Nonce)
}

// Serialize encodes the given transactions as a 32-bit little-endian count
// followed by the fixed-size encoding of each transaction.
func Serialize(txs []Transaction) []byte {
	res := make([]byte, 0, countSize+len(txs)*EncodedSize)
	res = binary.LittleEndian.AppendUint32(res, uint32(len(txs)))
	for i := range txs {
		res = txs[i].appendTo(res)
	}
	return res
}

func (t *Transaction) appendTo(buffer []byte) []byte {
	buffer = append(buffer, t.To[:]...)
	buffer = append(buffer, t.From[:]...)
	buffer = binary.LittleEndian.AppendUint64(buffer, t.Nonce)
	buffer = binary.LittleEndian.AppendUint64(buffer, t.Amount)
	return append(buffer, t.Signature[:]...)
}

// Deserialize decodes a list of transactions from the beginning of the given
// data. The remaining bytes are returned.
func Deserialize(data []byte) ([]Transaction, []byte, error) {
	if len(data) < countSize {
		return nil, nil, fmt.Errorf("%w: missing transaction count", ErrMalformed)
	}
	count := uint64(binary.LittleEndian.Uint32(data))
	data = data[countSize:]
	if uint64(len(data)) < count*EncodedSize {
		return nil, nil, fmt.Errorf("%w: %d bytes are too short for %d transactions", ErrMalformed, len(data), count)
	}
	res := make([]Transaction, count)
	for i := range res {
		cur := &res[i]
		cur.To = common.Address(data[0:])
		cur.From = common.Address(data[32:])
		cur.Nonce = binary.LittleEndian.Uint64(data[64:])
		cur.Amount = binary.LittleEndian.Uint64(data[72:])
		cur.Signature = [SignatureSize]byte(data[80:])
		data = data[EncodedSize:]
	}
	return res, data, nil
}

// Process applies the given transactions to the state in order. Processing
// stops at the first failing transaction, leaving the effects of preceding
// transactions and already completed steps of the failing one in place.
func Process(s state.State, txs []Transaction) error {
	for i := range txs {
		if err := Apply(s, &txs[i]); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// Apply transfers the transaction's amount from the sender to the recipient
// and increments the sender's nonce.
func Apply(s state.State, tx *Transaction) error {
	if _, err := s.SubValue(tx.From, tx.Amount); err != nil {
		return err
	}
	if _, err := s.AddValue(tx.To, tx.Amount); err != nil {
		return err
	}
	if _, err := s.IncNonce(tx.From); err != nil {
		return err
	}
	return nil
}
