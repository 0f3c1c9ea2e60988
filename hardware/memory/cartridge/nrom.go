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

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
)

// the PRG RAM window is 8KB. larger PRG RAM sizes in the image header are not
// bank switched by NROM
const nromRAMSize = int(memorymap.MemtopPRGRAM-memorymap.OriginPRGRAM) + 1

type nrom struct {
	rom []uint8
	ram *memory.AddressSpace
}

func newNROM(prg []uint8) (*nrom, error) {
	if len(prg) != 0x4000 && len(prg) != 0x8000 {
		return nil, curated.Errorf("cartridge: NROM: unsupported PRG size (%d)", len(prg))
	}

	cart := &nrom{
		rom: make([]uint8, len(prg)),
		ram: memory.NewAddressSpace(nromRAMSize),
	}
	copy(cart.rom, prg)

	return cart, nil
}

func (cart *nrom) ID() string {
	return "NROM"
}

func (cart *nrom) String() string {
	if len(cart.rom) == 0x4000 {
		return "NROM-128: 16KB PRG (mirrored)"
	}
	return "NROM-256: 32KB PRG"
}

func (cart *nrom) Reset(rnd func() uint8) {
	cart.ram.Fill(rnd)
}

func (cart *nrom) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= memorymap.OriginPRGROM:
		return cart.rom[int(addr-memorymap.OriginPRGROM)%len(cart.rom)], nil
	case addr >= memorymap.OriginPRGRAM:
		return cart.ram.Read(int(addr - memorymap.OriginPRGRAM))
	}
	return 0, curated.Errorf(cpubus.AddressError, cpubus.Read, addr)
}

func (cart *nrom) Write(addr uint16, data uint8) error {
	if addr >= memorymap.OriginPRGRAM && addr <= memorymap.MemtopPRGRAM {
		return cart.ram.Write(int(addr-memorymap.OriginPRGRAM), data)
	}
	return curated.Errorf(cpubus.AddressError, cpubus.Write, addr)
}

func (cart *nrom) Poke(addr uint16, data uint8) error {
	if addr >= memorymap.OriginPRGROM {
		cart.rom[int(addr-memorymap.OriginPRGROM)%len(cart.rom)] = data
		return nil
	}
	return cart.Write(addr, data)
}

func (cart *nrom) RAM() *memory.AddressSpace {
	return cart.ram
}

func (cart *nrom) summary() string {
	return fmt.Sprintf("%s [%s]", cart.ID(), cart)
}
