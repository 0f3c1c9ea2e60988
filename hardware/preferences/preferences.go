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

// Package preferences contains the preference values that affect the
// behaviour of the emulated hardware.
package preferences

import (
	"math/rand"
	"time"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise registers and RAM to an unknown state on power-on
	RandomState prefs.Bool

	// seed for RandSrc. zero means that the generator is seeded from the
	// current time
	RandSeed prefs.Int

	// random values generated in the hardware package should use this source
	RandSrc *rand.Rand
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path argument is the location of the preferences
// file, usually paths.ResourcePath(prefs.DefaultPrefsFile).
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.RandSeed.SetHookPost(func(v prefs.Value) error {
		p.reseed(int64(v.(int)))
		return nil
	})
	p.reseed(0)

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.RandSrc = rand.New(rand.NewSource(seed))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
