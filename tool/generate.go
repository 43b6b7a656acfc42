// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/0xsoniclabs/stateless/go/common/diagnostics"
	"github.com/0xsoniclabs/stateless/go/composer"
	"github.com/0xsoniclabs/stateless/go/composer/fixture"
	"github.com/urfave/cli/v2"
)

var (
	accountsFlag = cli.IntFlag{
		Name:  "accounts",
		Usage: "number of accounts covered by the witness",
		Value: 10,
	}
	transactionsFlag = cli.IntFlag{
		Name:  "transactions",
		Usage: "number of transactions in the blob",
		Value: 10,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random number generator",
		Value: 0,
	}
	outFlag = cli.StringFlag{
		Name:     "out",
		Usage:    "target file, stored as CBOR if ending in .cbor, compressed CBOR if ending in .cbor.sz, text otherwise",
		Required: true,
	}
)

var GenerateCmd = cli.Command{
	Action: diagnostics.AddPerformanceDiagnosticsAction(doGenerate),
	Name:   "generate",
	Usage:  "generates a fixture with random accounts and transactions",
	Flags: []cli.Flag{
		&accountsFlag,
		&transactionsFlag,
		&heightFlag,
		&seedFlag,
		&outFlag,
	},
}

func doGenerate(context *cli.Context) error {
	config := composer.Config{
		Accounts:     context.Int(accountsFlag.Name),
		Transactions: context.Int(transactionsFlag.Name),
		Height:       context.Uint(heightFlag.Name),
		Seed:         context.Int64(seedFlag.Name),
	}
	log := NewLog(context.App.Writer)
	log.Printf("Generating blob with %d accounts and %d transactions at height %d ...", config.Accounts, config.Transactions, config.Height)
	generated, pre, post, err := composer.GenerateWithRoots(config)
	if err != nil {
		return err
	}
	data := generated.Bytes()
	log.Printf("Generated blob of %d bytes", len(data))

	path := context.String(outFlag.Name)
	err = fixture.Save(path, &fixture.Fixture{
		PreRoot:  pre,
		PostRoot: post,
		Blob:     data,
		Height:   config.Height,
	})
	if err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	log.Printf("Pre-state root:  %v", pre)
	log.Printf("Post-state root: %v", post)
	log.Printf("Fixture written to %s", path)
	return nil
}
