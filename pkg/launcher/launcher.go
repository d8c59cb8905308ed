// Run Silent
// Copyright (c) 2026 The Run Silent Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Run Silent.
//
// Run Silent is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Run Silent is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Run Silent.  If not, see <http://www.gnu.org/licenses/>.

// Package launcher starts the runner as a hidden child process and waits for
// it to exit.
package launcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is wrapped by LaunchError on platforms without hidden
// process creation.
var ErrUnsupported = errors.New("hidden process launch requires windows")

// Launcher abstracts hidden process creation so callers can be tested
// without starting real processes.
type Launcher interface {
	// RunHidden starts commandLine with no window, blocks until the child
	// exits and returns its exit code. workingDir may be empty to inherit
	// the current directory. Neither slice needs a NUL terminator; the
	// launcher makes its own writable copy.
	RunHidden(commandLine, workingDir []uint16) (uint32, error)
}

// HiddenLauncher is the production Launcher.
type HiddenLauncher struct{}

// LaunchError describes a failed step of process creation. Message holds
// the OS description of Code.
type LaunchError struct {
	Err     error
	Op      string
	Message string
	Code    uint32
}

func (e *LaunchError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code == 0 {
		return fmt.Sprintf("%s failed: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s failed: %s (code %d)", e.Op, msg, e.Code)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
