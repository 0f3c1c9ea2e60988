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

package test

import (
	"testing"
)

// number returns the value as an int64 if it is one of the integer types
// commonly found in the emulation.
func number(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// Equate is used to test equality between one value and another. Integer
// values can be compared with any other integer type. This is convenient
// because literal numbers are of type int:
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, 10)
//
// Other types must match exactly.
func Equate(t *testing.T, value, expectedValue any) {
	t.Helper()

	if v, ok := number(value); ok {
		ev, ok := number(expectedValue)
		if !ok {
			t.Fatalf("values for Equate() are not compatible (%T and %T)", value, expectedValue)
			return
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%#x  - wanted %#x)", value, v, ev)
		}
		return
	}

	switch v := value.(type) {
	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (nil  - wanted %v)", v, expectedValue)
		}

	case string:
		ev, ok := expectedValue.(string)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
			return
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%s  - wanted %s)", v, v, ev)
		}

	case bool:
		ev, ok := expectedValue.(bool)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
			return
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%v  - wanted %v)", v, v, ev)
		}

	default:
		t.Fatalf("unhandled type for Equate() function (%T))", v)
	}
}
