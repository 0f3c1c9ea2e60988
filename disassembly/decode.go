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
)

// Peeker is the memory interface required for disassembly. Peek() must not
// have side effects.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Decode the instruction at the address. Undocumented opcodes are decoded as
// a single byte with an operator of "???". An error is only returned if the
// opcode itself cannot be read. If the operand cannot be read then the
// returned entry is partial and the missing bytes are shown as "??".
func Decode(mem Peeker, address uint16) (*Entry, error) {
	opcode, err := mem.Peek(address)
	if err != nil {
		return nil, err
	}

	result := execution.Result{
		Address:   address,
		ByteCount: 1,
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		result.InstructionData = uint16(opcode)
		e := FormatResult(result, EntryLevelDecoded)
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		return e, nil
	}

	result.Defn = defn

	for i := 1; i < defn.Bytes; i++ {
		v, err := mem.Peek(address + uint16(i))
		if err != nil {
			break
		}
		result.InstructionData |= uint16(v) << (8 * (i - 1))
		result.ByteCount++
	}

	return FormatResult(result, EntryLevelDecoded), nil
}
