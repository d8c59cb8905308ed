//go:build windows

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

package launcher

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/contextfuncs/runsilent/pkg/widestr"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

// MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT)
const langNeutralDefault = 0x0400

// RunHidden creates the child with CREATE_NO_WINDOW and SW_HIDE, waits with
// no timeout and returns the child's exit code. Both process and thread
// handles are closed once creation succeeds, whatever happens afterwards.
func (*HiddenLauncher) RunHidden(commandLine, workingDir []uint16) (uint32, error) {
	// CreateProcessW may write into the command line, so it gets a private
	// buffer on every call.
	cmdBuf := widestr.Terminated(commandLine)

	var dir *uint16
	if len(workingDir) > 0 {
		dirBuf := widestr.Terminated(workingDir)
		dir = &dirBuf[0]
	}

	si := windows.StartupInfo{
		Flags:      windows.STARTF_USESHOWWINDOW,
		ShowWindow: windows.SW_HIDE,
	}
	si.Cb = uint32(unsafe.Sizeof(si))
	var pi windows.ProcessInformation

	err := windows.CreateProcess(
		nil,
		&cmdBuf[0],
		nil,
		nil,
		false,
		windows.CREATE_NO_WINDOW,
		nil,
		dir,
		&si,
		&pi,
	)
	if err != nil {
		return 0, newLaunchError("CreateProcess", err)
	}
	defer func() {
		if err := windows.CloseHandle(pi.Thread); err != nil {
			log.Warn().Err(err).Msg("closing child thread handle")
		}
		if err := windows.CloseHandle(pi.Process); err != nil {
			log.Warn().Err(err).Msg("closing child process handle")
		}
	}()

	log.Debug().Msgf("started child pid %d", pi.ProcessId)

	event, err := windows.WaitForSingleObject(pi.Process, windows.INFINITE)
	if err != nil {
		return 0, newLaunchError("WaitForSingleObject", err)
	}
	if event != windows.WAIT_OBJECT_0 {
		return 0, &LaunchError{
			Op:      "WaitForSingleObject",
			Message: fmt.Sprintf("unexpected wait result 0x%x", event),
		}
	}

	var exitCode uint32
	if err := windows.GetExitCodeProcess(pi.Process, &exitCode); err != nil {
		return 0, newLaunchError("GetExitCodeProcess", err)
	}

	return exitCode, nil
}

func newLaunchError(op string, err error) *LaunchError {
	le := &LaunchError{Op: op, Err: err}

	var errno windows.Errno
	if errors.As(err, &errno) {
		le.Code = uint32(errno)
		le.Message = FormatError(le.Code)
	}

	return le
}

// FormatError returns the system message for a Win32 error code.
func FormatError(code uint32) string {
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		code,
		langNeutralDefault,
		buf,
		nil,
	)
	if err != nil || n == 0 {
		return windows.Errno(code).Error()
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
