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

package registers

import (
	"fmt"
)

// ProgramCounter is the 16bit program counter. The value can only be changed
// with Advance() and Jump().
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the name of the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the program counter.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Advance moves the program counter forward by n bytes. The address wraps
// around at the top of memory.
func (pc *ProgramCounter) Advance(n uint8) {
	pc.value += uint16(n)
}

// Jump sets the program counter to an absolute address.
func (pc *ProgramCounter) Jump(address uint16) {
	pc.value = address
}

// Relative returns the address that is the result of applying a signed 8bit
// displacement to the current value of the program counter. The program
// counter is not changed.
func (pc ProgramCounter) Relative(displacement uint8) uint16 {
	return uint16(int32(pc.value) + int32(int8(displacement)))
}
