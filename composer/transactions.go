// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package composer

import (
	"fmt"
	"math/rand"

	"github.com/0xsoniclabs/stateless/go/common"
	"github.com/0xsoniclabs/stateless/go/transaction"
)

// RandomTransactions creates a sequence of transfers between the given
// accounts that can be processed without failures. Amounts never exceed the
// balance of the sender at the time of the transfer and nonces follow the
// sender's nonce. The given accounts are not modified.
func RandomTransactions(rng *rand.Rand, count int, accounts []Account) ([]transaction.Transaction, error) {
	if count == 0 {
		return []transaction.Transaction{}, nil
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no accounts to create transactions for", ErrGenerator)
	}

	type tracked struct {
		nonce uint64
		value uint64
	}
	current := make(map[common.Address]*tracked, len(accounts))
	for _, account := range accounts {
		current[account.Address] = &tracked{nonce: account.Nonce, value: account.Value}
	}

	res := make([]transaction.Transaction, count)
	for i := range res {
		from := accounts[rng.Intn(len(accounts))].Address
		to := accounts[rng.Intn(len(accounts))].Address
		sender := current[from]
		tx := &res[i]
		tx.From = from
		tx.To = to
		tx.Nonce = sender.nonce
		tx.Amount = randomAmount(rng, sender.value)
		rng.Read(tx.Signature[:])

		sender.value -= tx.Amount
		current[to].value += tx.Amount
		sender.nonce++
	}
	return res, nil
}
