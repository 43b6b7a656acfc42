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

	"github.com/0xsoniclabs/stateless/go/composer/fixture"
	"github.com/0xsoniclabs/stateless/go/database/witness/proof"
	"github.com/0xsoniclabs/stateless/go/transaction"
	"github.com/urfave/cli/v2"
)

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "list transactions and proof values",
}

var InspectCmd = cli.Command{
	Action:    doInspect,
	Name:      "inspect",
	Usage:     "prints the content of the blob of a fixture",
	ArgsUsage: "<fixture file>",
	Flags: []cli.Flag{
		&verboseFlag,
	},
}

func doInspect(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing fixture file parameter")
	}
	f, err := fixture.Load(context.Args().Get(0))
	if err != nil {
		return err
	}
	txs, rest, err := transaction.Deserialize(f.Blob)
	if err != nil {
		return err
	}
	p, err := proof.Decode(rest)
	if err != nil {
		return err
	}
	offsets, _, err := proof.Split(rest)
	if err != nil {
		return err
	}

	verbose := context.Bool(verboseFlag.Name)
	out := context.App.Writer
	fmt.Fprintf(out, "height: %d\n", f.Height)
	fmt.Fprintf(out, "pre_state_root: %v\n", f.PreRoot)
	fmt.Fprintf(out, "post_state_root: %v\n", f.PostRoot)
	fmt.Fprintf(out, "transactions: %d\n", len(txs))
	if verbose {
		for i := range txs {
			fmt.Fprintf(out, "  %d: %v\n", i, &txs[i])
		}
	}
	fmt.Fprintf(out, "proof nodes: %d\n", p.Len())
	fmt.Fprintf(out, "offsets: %v\n", offsets)
	fmt.Fprintf(out, "indices: %v\n", p.Indices)
	if verbose {
		for i, index := range p.Indices {
			fmt.Fprintf(out, "  %v: %v\n", index, p.Values[i])
		}
	}
	return nil
}
