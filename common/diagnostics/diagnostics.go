// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package diagnostics

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	CpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	TraceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
)

// Flags returns the command line flags controlling the diagnostics added by
// AddPerformanceDiagnosticsAction.
func Flags() []cli.Flag {
	return []cli.Flag{&CpuProfileFlag, &TraceFlag}
}

// AddPerformanceDiagnosticsAction wraps an action function to record a CPU
// profile and an execution trace while the action is running. Recording is
// enabled by providing target files through CpuProfileFlag and TraceFlag.
func AddPerformanceDiagnosticsAction(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) (err error) {
		if filename := strings.TrimSpace(context.String(CpuProfileFlag.Name)); filename != "" {
			stop, startErr := startCpuProfiler(filename)
			if startErr != nil {
				return startErr
			}
			defer func() {
				err = errors.Join(err, stop())
			}()
		}

		if filename := strings.TrimSpace(context.String(TraceFlag.Name)); filename != "" {
			stop, startErr := startTracer(filename)
			if startErr != nil {
				return startErr
			}
			defer func() {
				err = errors.Join(err, stop())
			}()
		}

		return action(context)
	}
}

func startCpuProfiler(filename string) (func() error, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("could not start CPU profile: %w", err), f.Close())
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}

func startTracer(filename string) (func() error, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to start trace: %w", err), f.Close())
	}
	return func() error {
		trace.Stop()
		return f.Close()
	}, nil
}
