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

package peripherals

import (
	"fmt"
	"strings"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/logger"
)

// Registers is a bank of latched byte registers. It implements the
// cpubus.Memory interface.
type Registers struct {
	label  string
	origin uint16

	data    []uint8
	touched []bool
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The bank will respond to addresses origin to origin+size-1.
func NewRegisters(label string, origin uint16, size int) *Registers {
	return &Registers{
		label:   label,
		origin:  origin,
		data:    make([]uint8, size),
		touched: make([]bool, size),
	}
}

// NewPPU returns a bank for the Registers area. The bus delivers addresses in
// that area already reduced to the eight primary registers.
func NewPPU() *Registers {
	return NewRegisters("PPU", memorymap.OriginRegisters, int(memorymap.MaskRegisters)+1)
}

// NewIO returns a bank for the IO area.
func NewIO() *Registers {
	return NewRegisters("APU/IO", memorymap.OriginIO, int(memorymap.MemtopIO-memorymap.OriginIO)+1)
}

// Label returns the name of the bank.
func (reg *Registers) Label() string {
	return reg.label
}

func (reg *Registers) String() string {
	s := strings.Builder{}
	s.WriteString(reg.label)
	s.WriteString(":")
	for _, v := range reg.data {
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	return s.String()
}

// Reset clears all register values.
func (reg *Registers) Reset() {
	for i := range reg.data {
		reg.data[i] = 0
		reg.touched[i] = false
	}
}

func (reg *Registers) index(addr uint16, access cpubus.Access) (int, error) {
	idx := int(addr) - int(reg.origin)
	if idx < 0 || idx >= len(reg.data) {
		return 0, curated.Errorf(cpubus.AddressError, access, addr)
	}
	return idx, nil
}

func (reg *Registers) touch(idx int, access cpubus.Access) {
	if reg.touched[idx] {
		return
	}
	reg.touched[idx] = true
	logger.Logf(logger.Allow, reg.label, "first %s of %#04x", access, reg.origin+uint16(idx))
}

// Read is an implementation of cpubus.Memory.
func (reg *Registers) Read(addr uint16) (uint8, error) {
	idx, err := reg.index(addr, cpubus.Read)
	if err != nil {
		return 0, err
	}
	reg.touch(idx, cpubus.Read)
	return reg.data[idx], nil
}

// Write is an implementation of cpubus.Memory.
func (reg *Registers) Write(addr uint16, data uint8) error {
	idx, err := reg.index(addr, cpubus.Write)
	if err != nil {
		return err
	}
	reg.touch(idx, cpubus.Write)
	reg.data[idx] = data
	return nil
}

// Peek is an implementation of cpubus.Peeker.
func (reg *Registers) Peek(addr uint16) (uint8, error) {
	idx, err := reg.index(addr, cpubus.Read)
	if err != nil {
		return 0, err
	}
	return reg.data[idx], nil
}

// Poke is an implementation of memory.Poker.
func (reg *Registers) Poke(addr uint16, data uint8) error {
	idx, err := reg.index(addr, cpubus.Write)
	if err != nil {
		return err
	}
	reg.data[idx] = data
	return nil
}

// Snapshot returns a copy of the register values.
func (reg *Registers) Snapshot() []uint8 {
	c := make([]uint8, len(reg.data))
	copy(c, reg.data)
	return c
}

// Plumb replaces the register values.
func (reg *Registers) Plumb(data []uint8) error {
	if len(data) != len(reg.data) {
		return curated.Errorf("peripherals: %s: cannot plumb %d values into %d registers", reg.label, len(data), len(reg.data))
	}
	copy(reg.data, data)
	return nil
}
