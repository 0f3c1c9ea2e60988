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

//go:build !windows
// +build !windows

package easyterm

import (
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/logger"
	"github.com/pkg/term"
)

// EasyTerm wraps the controlling terminal while it is in cbreak mode.
type EasyTerm struct {
	tty *term.Term
}

// Open the controlling terminal and put it into cbreak mode. Close() must be
// called to restore the terminal to its previous state.
func Open() (*EasyTerm, error) {
	if !IsInteractive() {
		return nil, curated.Errorf(NotInteractive)
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}

	logger.Logf(logger.Allow, "easyterm", "terminal in cbreak mode")

	return &EasyTerm{tty: tty}, nil
}

// ReadKey blocks until a single key has been pressed.
func (et *EasyTerm) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := et.tty.Read(b)
		if err != nil {
			return 0, curated.Errorf("easyterm: %v", err)
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Close restores the terminal and releases the file handle.
func (et *EasyTerm) Close() error {
	if err := et.tty.Restore(); err != nil {
		_ = et.tty.Close()
		return curated.Errorf("easyterm: %v", err)
	}
	if err := et.tty.Close(); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	logger.Logf(logger.Allow, "easyterm", "terminal restored")
	return nil
}
