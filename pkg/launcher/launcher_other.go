//go:build !windows

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

// RunHidden always fails outside Windows.
func (*HiddenLauncher) RunHidden(_, _ []uint16) (uint32, error) {
	return 0, &LaunchError{
		Op:      "CreateProcess",
		Err:     ErrUnsupported,
		Message: ErrUnsupported.Error(),
	}
}

// FormatError has no system message table to consult outside Windows.
func FormatError(uint32) string {
	return ""
}
