// This file is part of Gofami.
//
// Gofami is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gofami is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gofami.  If not, see <https://www.gnu.org/licenses/>.

//go:build windows
// +build windows

package easyterm

import (
	"github.com/gofami/gofami/curated"
)

// EasyTerm is not available under windows.
type EasyTerm struct {
}

// Open always fails under windows.
func Open() (*EasyTerm, error) {
	if !IsInteractive() {
		return nil, curated.Errorf(NotInteractive)
	}
	return nil, curated.Errorf("easyterm: single key input not available on windows")
}

// ReadKey always fails under windows.
func (et *EasyTerm) ReadKey() (byte, error) {
	return 0, curated.Errorf("easyterm: single key input not available on windows")
}

// Close does nothing under windows.
func (et *EasyTerm) Close() error {
	return nil
}
