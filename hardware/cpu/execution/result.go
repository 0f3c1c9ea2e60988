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

package execution

import (
	"github.com/gofami/gofami/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt serviced instead of an instruction.
type Interrupt string

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = ""
	NMI         Interrupt = "NMI"
	IRQ         Interrupt = "IRQ"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. will be nil if the result is
	// for the servicing of an interrupt
	Defn *instructions.Definition

	// the operand of the instruction. for branch instructions, this is the
	// signed displacement
	InstructionData uint16

	// the number of bytes read by the CPU while decoding the instruction
	ByteCount int

	// the number of cycles taken by the instruction. includes page fault and
	// branch penalties
	Cycles int

	// whether an extra cycle was required because of an indexed address
	// crossing a page boundary
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path in the CPU was triggered
	CPUBug Bug

	// the interrupt serviced, if any
	Interrupt Interrupt

	// whether the result is complete
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
