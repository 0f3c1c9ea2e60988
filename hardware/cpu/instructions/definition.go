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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// number of bytes including the opcode
	Bytes int

	// base number of cycles. page crossing and branching penalties are not
	// included
	Cycles int

	// instruction takes an extra cycle if the indexed address crosses a page
	PageSensitive bool

	Effect EffectCategory

	// opcode is not part of the documented instruction set. the CPU will not
	// execute undocumented instructions
	Undocumented bool
}

// Mnemonic returns the three letter name of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

func (defn Definition) String() string {
	s := fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
	if defn.Undocumented {
		s = fmt.Sprintf("%s (undocumented)", s)
	}
	return s
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for the opcode. The boolean return value is
// false if the opcode has no definition or if the definition is for an
// undocumented instruction.
func Lookup(opcode uint8) (*Definition, bool) {
	defn := &Definitions[opcode]
	if defn.Operator == NoOperator || defn.Undocumented {
		return defn, false
	}
	return defn, true
}
