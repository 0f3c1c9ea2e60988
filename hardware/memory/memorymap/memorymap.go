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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Registers:
		return "Registers"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas of the address space. Every address belongs to
// exactly one area.
const (
	Undefined Area = iota
	RAM
	Registers
	IO
	Cartridge
)

// NumAreas is the number of memory areas, including Undefined. Useful for
// sizing arrays indexed by Area.
const NumAreas = int(Cartridge) + 1

// The origin and memory top for each area of memory. The RAM and Registers
// areas are mirrored throughout their range. The primary address is found
// with the respective mask.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginRegisters = uint16(0x2000)
	MemtopRegisters = uint16(0x3fff)
	OriginIO        = uint16(0x4000)
	MemtopIO        = uint16(0x401f)
	OriginCart      = uint16(0x4020)
	MemtopCart      = uint16(0xffff)
)

// The conventional layout of the cartridge area. PRG RAM and PRG ROM windows
// are decoded by the cartridge mapper and not by the bus.
const (
	OriginPRGRAM = uint16(0x6000)
	MemtopPRGRAM = uint16(0x7fff)
	OriginPRGROM = uint16(0x8000)
	MemtopPRGROM = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MaskRAM reduces a RAM address to the primary mirror. The internal RAM is
// 2KB and is mirrored four times.
//
// MaskRegisters reduces a Registers address to the primary mirror relative to
// OriginRegisters. There are eight registers repeated every eight bytes.
const (
	MaskRAM       = uint16(0x07ff)
	MaskRegisters = uint16(0x0007)
)

// RAMSize is the number of bytes of internal RAM.
const RAMSize = int(MaskRAM) + 1

// MapAddress translates the address argument from mirror space to primary
// space. An address should be passed through this function before accessing
// memory. The I/O and cartridge windows are not mirrored and are returned
// unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopRegisters:
		return OriginRegisters | (address & MaskRegisters), Registers
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
