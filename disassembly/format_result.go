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

	"github.com/gofami/gofami/hardware/cpu/execution"
	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/hardware/memory/addresses"
)

// FormatResult creates an Entry for the supplied result. It will be assigned
// the specified EntryLevel.
func FormatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Result: result,
		Level:  level,
	}

	e.Address = fmt.Sprintf("$%04x", result.Address)

	if result.Defn == nil {
		if result.Interrupt != execution.NoInterrupt {
			e.Operator = string(result.Interrupt)
		} else {
			e.Operator = "???"
		}
		return e
	}

	e.Operator = result.Defn.Operator.String()

	// bytecode and operand string is assembled depending on the number of
	// expected bytes and the number of bytes read
	operand := result.InstructionData
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			e.Operand = fmt.Sprintf("$%04x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, operand&0x00ff, operand>>8)
		case 2:
			e.Operand = fmt.Sprintf("$??%02x", operand&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			e.Operand = fmt.Sprintf("$%02x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	// complete instructions can have their operands replaced with something
	// more meaningful
	if result.ByteCount == result.Defn.Bytes {
		switch result.Defn.AddressingMode {
		case instructions.Relative:
			e.Operand = fmt.Sprintf("$%04x", absoluteBranchDestination(result.Address, operand))
		case instructions.Absolute, instructions.ZeroPage,
			instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
			instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
			if result.Defn.Effect != instructions.Flow && result.Defn.Effect != instructions.Subroutine {
				write := result.Defn.Effect == instructions.Write || result.Defn.Effect == instructions.RMW
				if s, ok := addresses.Symbol(operand, write); ok {
					e.Operand = s
				}
			}
		case instructions.Indirect:
			if s, ok := addresses.Symbol(operand, false); ok {
				e.Operand = s
			}
		}
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}
