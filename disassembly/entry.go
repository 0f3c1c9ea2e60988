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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gofami/gofami/hardware/cpu/execution"
	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/hardware/cpu/registers"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though the address is the start of a
// valid instruction. Executed entries have been created from the result of a
// CPU instruction.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// copy of the CPU execution or of the decoding
	Result execution.Result

	// string representations of information in Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand))
}

// Cycles returns the number of cycles for the entry. For decoded entries this
// is the number of cycles in the instruction definition, with a trailing
// asterisk if the number can be larger depending on the state of the machine.
func (e *Entry) Cycles() string {
	if e.Result.Defn == nil {
		if e.Result.Interrupt != execution.NoInterrupt && e.Level == EntryLevelExecuted {
			return fmt.Sprintf("%d", e.Result.Cycles)
		}
		return "?"
	}

	if e.Level == EntryLevelExecuted {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	if e.Result.Defn.PageSensitive || e.Result.Defn.IsBranch() {
		return fmt.Sprintf("%d*", e.Result.Defn.Cycles)
	}
	return fmt.Sprintf("%d", e.Result.Defn.Cycles)
}

// decorate operand with addressing mode indicators.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Accumulator:
		s = "A"
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absoluteBranchDestination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	pc := registers.NewProgramCounter(addr)

	// all branch instructions are 2 bytes in length
	pc.Advance(2)

	return pc.Relative(uint8(operand))
}
