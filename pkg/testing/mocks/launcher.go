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

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockLauncher is a testify mock for launcher.Launcher.
// It records launch requests without creating processes.
type MockLauncher struct {
	mock.Mock
}

// RunHidden mocks a hidden process launch.
// Use On() to set expectations and Return() to control the exit code.
//
// Example:
//
//	l := &MockLauncher{}
//	l.On("RunHidden", mock.Anything, mock.Anything).Return(uint32(42), nil)
func (m *MockLauncher) RunHidden(commandLine, workingDir []uint16) (uint32, error) {
	called := m.Called(commandLine, workingDir)
	code, _ := called.Get(0).(uint32)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return code, called.Error(1)
}
