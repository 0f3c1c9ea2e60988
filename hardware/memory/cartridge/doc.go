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

// Package cartridge owns the cartridge area of the memory map. The Cartridge
// type is attached to the memory bus and forwards accesses to the mapper
// selected by Attach().
//
// Only the NROM mapper (iNES mapper 0) is supported. NROM places the PRG ROM
// at 0x8000 to 0xffff. A 16KB ROM is mirrored to fill the window. PRG RAM is
// at 0x6000 to 0x7fff. Accesses to the rest of the cartridge area, and writes
// to ROM, result in a cpubus.AddressError.
//
// When no cartridge is attached every access results in an AddressError.
package cartridge
