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
	"testing"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/state"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func address(v byte) common.Address {
	var res common.Address
	res[31] = v
	return res
}

func TestSerialize_EmptyListIsCountOnly(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0, 0}, Serialize(nil))
}

func TestSerialize_ProducesFixedLayout(t *testing.T) {
	require := require.New(t)
	tx := Transaction{
		To:     address(1),
		From:   address(2),
		Nonce:  3,
		Amount: 0x0405,
	}
	tx.Signature[0] = 0xaa
	tx.Signature[SignatureSize-1] = 0xbb

	data := Serialize([]Transaction{tx, tx})
	require.Len(data, 4+2*EncodedSize)
	require.Equal(uint32(2), binary.LittleEndian.Uint32(data))

	record := data[4 : 4+EncodedSize]
	require.Equal(address(1), common.Address(record[0:32]))
	require.Equal(address(2), common.Address(record[32:64]))
	require.Equal(uint64(3), binary.LittleEndian.Uint64(record[64:72]))
	require.Equal([]byte{5, 4, 0, 0, 0, 0, 0, 0}, record[72:80])
	require.Equal(byte(0xaa), record[80])
	require.Equal(byte(0xbb), record[EncodedSize-1])
	require.Equal(176, EncodedSize)
}

func TestDeserialize_RestoresTransactionsAndReturnsRemainder(t *testing.T) {
	require := require.New(t)
	txs := []Transaction{
		{To: address(1), From: address(2), Nonce: 1, Amount: 10},
		{To: address(3), From: address(4), Nonce: 2, Amount: 20},
	}
	txs[1].Signature[17] = 1
	data := append(Serialize(txs), 1, 2, 3)

	restored, rest, err := Deserialize(data)
	require.NoError(err)
	require.Equal(txs, restored)
	require.Equal([]byte{1, 2, 3}, rest)
}

func TestDeserialize_EmptyList(t *testing.T) {
	require := require.New(t)
	restored, rest, err := Deserialize([]byte{0, 0, 0, 0, 9})
	require.NoError(err)
	require.Empty(restored)
	require.Equal([]byte{9}, rest)
}

func TestDeserialize_InvalidInputsAreRejected(t *testing.T) {
	valid := Serialize([]Transaction{{Amount: 1}})
	huge := []byte{0xff, 0xff, 0xff, 0xff}
	tests := map[string][]byte{
		"empty":           nil,
		"short count":     {1, 0, 0},
		"missing records": {1, 0, 0, 0},
		"truncated":       valid[:len(valid)-1],
		"huge count":      huge,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Deserialize(data)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestProcess_AppliesTransfersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := state.NewMockState(ctrl)
	gomock.InOrder(
		s.EXPECT().SubValue(address(1), uint64(5)).Return(uint64(5), nil),
		s.EXPECT().AddValue(address(2), uint64(5)).Return(uint64(5), nil),
		s.EXPECT().IncNonce(address(1)).Return(uint64(1), nil),
		s.EXPECT().SubValue(address(2), uint64(3)).Return(uint64(2), nil),
		s.EXPECT().AddValue(address(1), uint64(3)).Return(uint64(8), nil),
		s.EXPECT().IncNonce(address(2)).Return(uint64(1), nil),
	)
	err := Process(s, []Transaction{
		{From: address(1), To: address(2), Amount: 5},
		{From: address(2), To: address(1), Amount: 3},
	})
	require.NoError(t, err)
}

func TestProcess_StopsAtFirstFailure(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	s := state.NewMockState(ctrl)
	gomock.InOrder(
		s.EXPECT().SubValue(address(1), uint64(5)).Return(uint64(5), nil),
		s.EXPECT().AddValue(address(2), uint64(5)).Return(uint64(5), nil),
		s.EXPECT().IncNonce(address(1)).Return(uint64(1), nil),
		s.EXPECT().SubValue(address(2), uint64(9)).Return(uint64(0), state.ErrOverflow),
	)
	err := Process(s, []Transaction{
		{From: address(1), To: address(2), Amount: 5},
		{From: address(2), To: address(1), Amount: 9},
		{From: address(1), To: address(2), Amount: 1},
	})
	require.ErrorIs(err, state.ErrOverflow)
	require.ErrorContains(err, "transaction 1")
}

func TestApply_PropagatesErrorsOfEachStep(t *testing.T) {
	injected := errors.New("injected")
	tx := &Transaction{From: address(1), To: address(2), Amount: 7}

	t.Run("sub", func(t *testing.T) {
		s := state.NewMockState(gomock.NewController(t))
		s.EXPECT().SubValue(tx.From, tx.Amount).Return(uint64(0), injected)
		require.ErrorIs(t, Apply(s, tx), injected)
	})
	t.Run("add", func(t *testing.T) {
		s := state.NewMockState(gomock.NewController(t))
		s.EXPECT().SubValue(tx.From, tx.Amount).Return(uint64(0), nil)
		s.EXPECT().AddValue(tx.To, tx.Amount).Return(uint64(0), injected)
		require.ErrorIs(t, Apply(s, tx), injected)
	})
	t.Run("nonce", func(t *testing.T) {
		s := state.NewMockState(gomock.NewController(t))
		s.EXPECT().SubValue(tx.From, tx.Amount).Return(uint64(0), nil)
		s.EXPECT().AddValue(tx.To, tx.Amount).Return(uint64(7), nil)
		s.EXPECT().IncNonce(tx.From).Return(uint64(0), injected)
		require.ErrorIs(t, Apply(s, tx), injected)
	})
}

func TestTransaction_String(t *testing.T) {
	tx := &Transaction{From: address(1), To: address(2), Amount: 7, Nonce: 3}
	require.Contains(t, tx.String(), ": 7 (nonce 3)")
}
