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

	"github.com/0xsoniclabs/stateless/go/blob"
	"github.com/0xsoniclabs/stateless/go/common/diagnostics"
	"github.com/0xsoniclabs/stateless/go/composer/fixture"
	"github.com/urfave/cli/v2"
)

var heightFlag = cli.UintFlag{
	Name:  "height",
	Usage: "height of the account section of the state tree",
	Value: fixture.DefaultHeight,
}

var RunCmd = cli.Command{
	Action:    diagnostics.AddPerformanceDiagnosticsAction(doRun),
	Name:      "run",
	Usage:     "processes the blob of a fixture and checks the resulting state root",
	ArgsUsage: "<fixture file>",
	Flags: []cli.Flag{
		&heightFlag,
	},
}

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing fixture file parameter")
	}
	f, err := fixture.Load(context.Args().Get(0))
	if err != nil {
		return err
	}
	height := f.Height
	if context.IsSet(heightFlag.Name) {
		height = context.Uint(heightFlag.Name)
	}

	out := context.App.Writer
	fmt.Fprintf(out, "pre_state_root => %v\n", f.PreRoot)
	post, err := blob.Process(f.Blob, f.PreRoot, height)
	if err != nil {
		return fmt.Errorf("failed to process blob: %w", err)
	}
	if post != f.PostRoot {
		return fmt.Errorf("%w: expected %v, got %v", blob.ErrPostRootMismatch, f.PostRoot, post)
	}
	fmt.Fprintf(out, "post_state_root => %v\n", post)
	return nil
}
