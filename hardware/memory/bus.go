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

package memory

import (
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/logger"
)

// Poker is implemented by collaborators that allow modification by debugging
// tools.
type Poker interface {
	Poke(address uint16, data uint8) error
}

// Bus is the memory bus. It implements the cpubus.Memory interface.
type Bus struct {
	prefs *preferences.Preferences

	ram *AddressSpace

	// collaborators indexed by memorymap.Area. entries for the Undefined and
	// RAM areas are always nil
	areas [memorymap.NumAreas]cpubus.Memory

	// the most recent address and value accessed through Read() or Write().
	// Peek() and Poke() do not affect these values
	LastAccessAddress uint16
	LastAccessValue   uint8
	LastAccessWrite   bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// prefs argument can be nil.
func NewBus(prefs *preferences.Preferences) *Bus {
	bus := &Bus{
		prefs: prefs,
		ram:   NewAddressSpace(memorymap.RAMSize),
	}
	bus.Reset()
	return bus
}

// Reset the contents of RAM. Attached collaborators are not affected.
func (bus *Bus) Reset() {
	if bus.prefs != nil && bus.prefs.RandomState.Get().(bool) {
		bus.ram.Fill(func() uint8 {
			return uint8(bus.prefs.RandSrc.Intn(0x100))
		})
	} else {
		bus.ram.Fill(func() uint8 { return 0 })
	}
}

// Attach a collaborator to an area of memory. Any existing collaborator for
// the area is replaced. A nil collaborator detaches the area.
//
// The RAM area is owned by the Bus and cannot be attached to.
func (bus *Bus) Attach(area memorymap.Area, mem cpubus.Memory) error {
	switch area {
	case memorymap.Registers, memorymap.IO, memorymap.Cartridge:
	default:
		return curated.Errorf("bus: cannot attach to %s area", area)
	}
	bus.areas[area] = mem
	logger.Logf(logger.Allow, "memory", "%T attached to %s area", mem, area)
	return nil
}

// Attached returns the collaborator attached to the area. Returns nil if
// there is no collaborator.
func (bus *Bus) Attached(area memorymap.Area) cpubus.Memory {
	if int(area) < 0 || int(area) >= len(bus.areas) {
		return nil
	}
	return bus.areas[area]
}

// collaborator returns the owner of the mapped address. returns an
// AddressError if the area has no collaborator.
func (bus *Bus) collaborator(address uint16, area memorymap.Area, access cpubus.Access) (cpubus.Memory, error) {
	mem := bus.areas[area]
	if mem == nil {
		logger.Logf(logger.Allow, "memory", "unowned %s of %#04x (%s area)", access, address, area)
		return nil, curated.Errorf(cpubus.AddressError, access, address)
	}
	return mem, nil
}

// Read is an implementation of cpubus.Memory.
func (bus *Bus) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	var data uint8
	var err error

	if area == memorymap.RAM {
		data, err = bus.ram.Read(int(ma))
	} else {
		var mem cpubus.Memory
		mem, err = bus.collaborator(address, area, cpubus.Read)
		if err != nil {
			return 0, err
		}
		data, err = mem.Read(ma)
	}

	if err != nil {
		return 0, err
	}

	bus.LastAccessAddress = address
	bus.LastAccessValue = data
	bus.LastAccessWrite = false

	return data, nil
}

// Write is an implementation of cpubus.Memory. Writes to areas other than RAM
// are forwarded to the attached collaborator.
func (bus *Bus) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	var err error

	if area == memorymap.RAM {
		err = bus.ram.Write(int(ma), data)
	} else {
		var mem cpubus.Memory
		mem, err = bus.collaborator(address, area, cpubus.Write)
		if err != nil {
			return err
		}
		err = mem.Write(ma, data)
	}

	if err != nil {
		return err
	}

	bus.LastAccessAddress = address
	bus.LastAccessValue = data
	bus.LastAccessWrite = true

	return nil
}

// Peek reads the address without side effects. Collaborators that do not
// implement the cpubus.Peeker interface cannot be peeked.
func (bus *Bus) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	if area == memorymap.RAM {
		return bus.ram.Read(int(ma))
	}

	mem := bus.areas[area]
	if p, ok := mem.(cpubus.Peeker); ok {
		return p.Peek(ma)
	}

	return 0, curated.Errorf(cpubus.AddressError, cpubus.Read, address)
}

// Poke writes to the address without affecting the LastAccess fields.
// Collaborators that do not implement the Poker interface cannot be poked.
func (bus *Bus) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	if area == memorymap.RAM {
		return bus.ram.Write(int(ma), data)
	}

	mem := bus.areas[area]
	if p, ok := mem.(Poker); ok {
		return p.Poke(ma, data)
	}

	return curated.Errorf(cpubus.AddressError, cpubus.Write, address)
}

// Snapshot returns a copy of the internal RAM.
func (bus *Bus) Snapshot() *AddressSpace {
	return bus.ram.Snapshot()
}

// Plumb replaces the internal RAM with the contents of the snapshot.
func (bus *Bus) Plumb(ram *AddressSpace) error {
	return bus.ram.Load(ram.data)
}

// RAM returns a hex dump of the internal RAM.
func (bus *Bus) RAM() string {
	return bus.ram.String()
}
