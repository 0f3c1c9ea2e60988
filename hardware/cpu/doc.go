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

// Package cpu emulates the 6502 microprocessor core of the 2A03. The CPU
// executes one instruction at a time with the ExecuteInstruction() function.
// The number of cycles taken by the instruction is added to the Cycles field
// and the caller must drain the field with Tick() before the next instruction
// can be executed:
//
//	for {
//		if mc.Tick() {
//			err := mc.ExecuteInstruction()
//			...
//		}
//	}
//
// Memory is accessed only through the cpubus.Memory interface given to
// NewCPU(). In the emulation this is the memory.Bus type.
//
// Undocumented opcodes are not executed. The CPU reports them with the
// IllegalOpcode error and the state of the CPU is unchanged. Errors during
// the execution of an instruction, such as an access to an address with no
// owner, also leave the registers unchanged.
//
// The decimal mode flag can be set and cleared but the 2A03 has no binary
// coded decimal arithmetic and the flag does not affect ADC or SBC.
package cpu
