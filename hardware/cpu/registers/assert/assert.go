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

// Package assert contains helper functions for testing the registers package
// and packages that use it.
package assert

import (
	"testing"

	"github.com/gofami/gofami/hardware/cpu/registers"
)

// Status checks the flags of the status register against a string of eight
// characters in the format returned by registers.Status.String(). A hyphen in
// any position means that the flag is not checked.
func Status(t *testing.T, sr registers.Status, flags string) {
	t.Helper()

	if len(flags) != 8 {
		t.Fatalf("status assertion must be eight characters (%s)", flags)
	}

	s := sr.String()
	for i := range flags {
		if flags[i] == '-' {
			continue
		}
		if flags[i] != s[i] {
			t.Errorf("unexpected status flags (%s - wanted %s)", s, flags)
			return
		}
	}
}
