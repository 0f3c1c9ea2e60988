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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/gofami/gofami/prefs"
	"github.com/gofami/gofami/test"
)

func TestCommandLineStack(t *testing.T) {
	test.Equate(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::10")
	test.Equate(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.Equate(t, v.(string), "bar")

	// value is removed once it has been returned
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.Equate(t, prefs.PopCommandLineStack(), "baz::10")
	test.Equate(t, prefs.SizeCommandLineStack(), 0)
	test.Equate(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, _ := prefs.NewDisk(fn)
	var v prefs.Int
	dsk.Add("value", &v)
	v.Set(1)
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("value::99")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.Equate(t, v.Get().(int), 99)
}
