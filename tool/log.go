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
	"io"
	"log"
	"time"
)

// Log is a logger prefixing messages with the time elapsed since its
// creation.
type Log struct {
	start time.Time
	log   *log.Logger
}

func NewLog(out io.Writer) *Log {
	return &Log{
		start: time.Now(),
		log:   log.New(out, "", 0),
	}
}

func (l *Log) Print(msg string) {
	l.Printf("%s", msg)
}

func (l *Log) Printf(format string, v ...any) {
	elapsed := time.Since(l.start)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	l.log.Printf("[t=%4d:%02d] - %s", minutes, seconds, fmt.Sprintf(format, v...))
}
