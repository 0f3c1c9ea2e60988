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
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cpubus"
)

const ejectedName = "ejected"

// the ejected mapper owns nothing.
type ejected struct{}

func (cart ejected) ID() string {
	return "-"
}

func (cart ejected) String() string {
	return "no cartridge"
}

func (cart ejected) Reset(_ func() uint8) {
}

func (cart ejected) Read(addr uint16) (uint8, error) {
	return 0, curated.Errorf(cpubus.AddressError, cpubus.Read, addr)
}

func (cart ejected) Write(addr uint16, _ uint8) error {
	return curated.Errorf(cpubus.AddressError, cpubus.Write, addr)
}

func (cart ejected) Poke(addr uint16, _ uint8) error {
	return curated.Errorf(cpubus.AddressError, cpubus.Write, addr)
}

func (cart ejected) RAM() *memory.AddressSpace {
	return nil
}
