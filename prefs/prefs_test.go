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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/prefs"
	"github.com/gofami/gofami/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.Equate(t, string(d), fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected))
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.DemandSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Add("testB", &w))

	test.DemandSuccess(t, v.Set(true))
	test.DemandSuccess(t, w.Set("TRUE"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: true\n")

	test.DemandSuccess(t, w.Set("foo"))
	test.Equate(t, w.Get().(bool), false)
	test.DemandFailure(t, w.Set(10))

	// reload from disk
	test.DemandSuccess(t, dsk.Load(false))
	test.Equate(t, w.Get().(bool), true)
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var s prefs.String
	test.DemandSuccess(t, dsk.Add("number", &i))
	test.DemandSuccess(t, dsk.Add("name", &s))

	test.DemandSuccess(t, i.Set("100"))
	test.DemandSuccess(t, s.Set("gofami"))
	test.DemandFailure(t, i.Set("foo"))
	test.Equate(t, i.Get().(int), 100)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "name :: gofami\nnumber :: 100\n")

	test.DemandSuccess(t, dsk.Reset())
	test.Equate(t, i.Get().(int), 0)
	test.Equate(t, s.String(), "")
}

func TestPreserveUnknownEntries(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, _ := prefs.NewDisk(fn)
	var a prefs.Int
	dskA.Add("a", &a)
	a.Set(1)
	test.DemandSuccess(t, dskA.Save())

	dskB, _ := prefs.NewDisk(fn)
	var b prefs.Int
	dskB.Add("b", &b)
	b.Set(2)
	test.DemandSuccess(t, dskB.Save())

	cmpPrefsFile(t, fn, "a :: 1\nb :: 2\n")
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, _ := prefs.NewDisk(fn)
	var v prefs.Bool
	dsk.Add("test", &v)

	err := dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.Equate(t, post, 10)
	test.ExpectFailure(t, v.Set(-1))
	test.Equate(t, v.Get().(int), 10)
}
