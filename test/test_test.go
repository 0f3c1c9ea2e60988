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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofami/gofami/test"
)

func TestExpect(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectEquality(t, uint8(10), 10)
}

func TestEquate(t *testing.T) {
	test.Equate(t, uint16(0x8000), 0x8000)
	test.Equate(t, uint8(0xff), 255)
	test.Equate(t, int64(-1), -1)
	test.Equate(t, "foo", "foo")
	test.Equate(t, true, true)
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	fmt.Fprintf(w, "hello %s", "world")
	test.ExpectSuccess(t, w.Compare("hello world"))
	test.Equate(t, w.String(), "hello world")
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
