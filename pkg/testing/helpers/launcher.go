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

package helpers

import (
	"github.com/contextfuncs/runsilent/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockLauncher creates a MockLauncher whose launches exit with code 0.
//
// Override the default in tests that need a specific outcome:
//
//	l := helpers.NewMockLauncher()
//	l.ExpectedCalls = nil
//	l.On("RunHidden", mock.Anything, mock.Anything).Return(uint32(0), errLaunch)
func NewMockLauncher() *mocks.MockLauncher {
	l := &mocks.MockLauncher{}
	l.On("RunHidden", mock.Anything, mock.Anything).Return(uint32(0), nil).Maybe()
	return l
}
