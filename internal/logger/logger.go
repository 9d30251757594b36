/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide diagnostic logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

var (
	mu       sync.RWMutex
	logger   zerolog.Logger
	output   io.Writer = os.Stderr
	level              = zerolog.InfoLevel
	warnings atomic.Int64
)

func init() {
	configure()
}

// configure rebuilds the logger. Callers hold mu for writing, except init.
func configure() {
	var w io.Writer = io.Discard
	if output != nil && output != io.Discard {
		w = zerolog.ConsoleWriter{
			Out:     output,
			NoColor: color.NoColor || output != os.Stderr,
			PartsExclude: []string{
				zerolog.TimestampFieldName,
			},
		}
	}
	logger = zerolog.New(w).Level(level)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	configure()
}

// SetQuiet suppresses everything below warnings.
func SetQuiet(quiet bool) {
	mu.Lock()
	defer mu.Unlock()
	if quiet {
		level = zerolog.WarnLevel
	} else {
		level = zerolog.InfoLevel
	}
	configure()
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		level = zerolog.DebugLevel
	} else {
		level = zerolog.InfoLevel
	}
	configure()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	warnings.Add(1)
	l := current()
	l.Warn().Msg(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	l := current()
	l.Info().Msg(fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	l := current()
	l.Debug().Msg(fmt.Sprintf(format, args...))
}

// Warnings returns how many warnings have been logged since the last reset.
func Warnings() int64 {
	return warnings.Load()
}

// ResetWarnings zeroes the warning counter.
func ResetWarnings() {
	warnings.Store(0)
}
