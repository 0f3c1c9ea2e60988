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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/prefs"
	"github.com/gofami/gofami/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.Equate(t, p.RandomState.Get().(bool), false)

	// same seed produces the same sequence
	test.DemandSuccess(t, p.RandSeed.Set(100))
	a := p.RandSrc.Intn(0xff)
	test.DemandSuccess(t, p.RandSeed.Set(100))
	b := p.RandSrc.Intn(0xff)
	test.Equate(t, a, b)

	test.DemandSuccess(t, p.RandomState.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.Equate(t, q.RandomState.Get().(bool), true)
	test.Equate(t, q.RandSeed.Get().(int), 100)
}

func TestCommandLinePreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("hardware.randstate::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.Equate(t, p.RandomState.Get().(bool), true)
}
