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

package easyterm_test

import (
	"testing"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/easyterm"
	"github.com/gofami/gofami/test"
)

func TestOpenWithoutTerminal(t *testing.T) {
	if easyterm.IsInteractive() {
		t.Skip("test requires a non-interactive session")
	}

	et, err := easyterm.Open()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NotInteractive))
	test.ExpectSuccess(t, et == nil)
}

func TestWidth(t *testing.T) {
	test.ExpectSuccess(t, easyterm.Width() > 0)
}
