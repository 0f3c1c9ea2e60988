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

package instructions_test

import (
	"testing"

	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/test"
)

func TestTableIntegrity(t *testing.T) {
	var documented int

	for i, defn := range instructions.Definitions {
		test.Equate(t, defn.OpCode, i)

		if defn.Operator == instructions.NoOperator {
			t.Errorf("opcode %#02x has no operator", i)
		}

		test.Equate(t, defn.Bytes, defn.AddressingMode.OperandBytes()+1)

		// page sensitivity only makes sense for indexed reads
		if defn.PageSensitive {
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
			default:
				t.Errorf("page sensitive instruction with incompatible addressing mode: %s", defn)
			}
		}

		if !defn.Undocumented {
			documented++
		}
	}

	test.Equate(t, documented, 151)
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(0xa9)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.Operator, instructions.LDA)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.Equate(t, defn.Cycles, 2)
	test.Equate(t, defn.Mnemonic(), "LDA")

	defn, ok = instructions.Lookup(0xa5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.AddressingMode, instructions.ZeroPage)
	test.Equate(t, defn.Cycles, 3)

	defn, ok = instructions.Lookup(0xff)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, defn.Undocumented)
	test.ExpectEquality(t, defn.Operator, instructions.ISC)

	_, ok = instructions.Lookup(0x02)
	test.ExpectFailure(t, ok)
}

func TestWriteNotPageSensitive(t *testing.T) {
	// STA abs,X and STA (ind),Y always take the extra cycle in the base count
	defn := instructions.Definitions[0x9d]
	test.ExpectFailure(t, defn.PageSensitive)
	test.Equate(t, defn.Cycles, 5)

	defn = instructions.Definitions[0x91]
	test.ExpectFailure(t, defn.PageSensitive)
	test.Equate(t, defn.Cycles, 6)
}

func TestBranches(t *testing.T) {
	for _, op := range []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xb0, 0xd0, 0xf0} {
		test.ExpectSuccess(t, instructions.Definitions[op].IsBranch(), op)
	}
	test.ExpectFailure(t, instructions.Definitions[0x4c].IsBranch())
}
