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
	"github.com/gofami/gofami/hardware/memory"
)

// mapper implementations hold the data from the program image and decide
// how addresses in the cartridge area are decoded. addresses are not
// normalised and will be in the range 0x4020 to 0xffff.
type mapper interface {
	ID() string
	String() string

	// reset volatile areas of the cartridge
	Reset(rnd func() uint8)

	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error

	// poke writes to any address owned by the mapper, including ROM
	Poke(addr uint16, data uint8) error

	// the PRG RAM of the cartridge. can be nil
	RAM() *memory.AddressSpace
}
