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

package cartridge

import (
	"fmt"

	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/logger"
)

// Cartridge defines the information and operations for a cartridge. It
// implements the cpubus.Memory interface.
type Cartridge struct {
	prefs *preferences.Preferences

	Filename string
	Hash     string

	mapper mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The prefs argument can be nil.
func NewCartridge(prefs *preferences.Preferences) *Cartridge {
	cart := &Cartridge{prefs: prefs}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: the first
// line is the filename and the second line is information about the mapper.
func (cart Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the mapper ID.
func (cart Cartridge) ID() string {
	return cart.mapper.ID()
}

// Eject removes the mapper. All subsequent accesses will fail until a new
// cartridge is attached.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.mapper = ejected{}
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(ejected)
	return ok
}

// Attach the program image to the cartridge. The loader will be loaded if
// that has not already happened.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	if !cartload.HasLoaded() {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	cart.Eject()

	switch cartload.Mapper {
	case 0:
		m, err := newNROM(cartload.PRG)
		if err != nil {
			return err
		}
		cart.mapper = m
		logger.Logf(logger.Allow, "cartridge", "attached %s", m.summary())
	default:
		return curated.Errorf("cartridge: unsupported mapper (%d)", cartload.Mapper)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Reset()

	return nil
}

// Reset volatile areas of the cartridge. PRG RAM is randomised if the
// preferences say so.
func (cart *Cartridge) Reset() {
	if cart.prefs != nil && cart.prefs.RandomState.Get().(bool) {
		cart.mapper.Reset(func() uint8 {
			return uint8(cart.prefs.RandSrc.Intn(0x100))
		})
	} else {
		cart.mapper.Reset(func() uint8 { return 0 })
	}
}

// Read is an implementation of cpubus.Memory.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Write is an implementation of cpubus.Memory.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.Write(addr, data)
}

// Peek is an implementation of cpubus.Peeker.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Poke is an implementation of memory.Poker. Unlike Write(), the ROM can be
// poked.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.Poke(addr, data)
}

// Snapshot returns a copy of the PRG RAM. Returns nil if the cartridge has no
// RAM.
func (cart *Cartridge) Snapshot() *memory.AddressSpace {
	ram := cart.mapper.RAM()
	if ram == nil {
		return nil
	}
	return ram.Snapshot()
}

// Plumb replaces the contents of the PRG RAM.
func (cart *Cartridge) Plumb(data []uint8) error {
	ram := cart.mapper.RAM()
	if ram == nil {
		if len(data) == 0 {
			return nil
		}
		return curated.Errorf("cartridge: %s has no RAM", cart.mapper.ID())
	}
	return ram.Load(data)
}
