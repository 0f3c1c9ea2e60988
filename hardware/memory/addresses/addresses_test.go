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

package addresses_test

import (
	"testing"

	"github.com/gofami/gofami/hardware/memory/addresses"
	"github.com/gofami/gofami/test"
)

func TestSymbol(t *testing.T) {
	s, ok := addresses.Symbol(0x2000, true)
	test.ExpectSuccess(t, ok)
	test.Equate(t, s, "PPUCTRL")

	// PPUCTRL cannot be read
	_, ok = addresses.Symbol(0x2000, false)
	test.ExpectFailure(t, ok)

	// mirrored
	s, ok = addresses.Symbol(0x3ffa, false)
	test.ExpectSuccess(t, ok)
	test.Equate(t, s, "PPUSTATUS")

	s, ok = addresses.Symbol(0x4017, true)
	test.ExpectSuccess(t, ok)
	test.Equate(t, s, "FRAMECNT")
	s, ok = addresses.Symbol(0x4017, false)
	test.ExpectSuccess(t, ok)
	test.Equate(t, s, "JOY2")

	s, ok = addresses.Symbol(0xfffc, false)
	test.ExpectSuccess(t, ok)
	test.Equate(t, s, "RESET")

	_, ok = addresses.Symbol(0x0010, false)
	test.ExpectFailure(t, ok)
	_, ok = addresses.Symbol(0x8000, false)
	test.ExpectFailure(t, ok)
}
