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

package cpu

import (
	"github.com/gofami/gofami/hardware/cpu/execution"
	"github.com/gofami/gofami/hardware/cpu/instructions"
)

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolve the effective address of the operand for the addressing mode.
// operand bytes are consumed from the instruction stream and the PC advanced
// by the number of bytes consumed.
//
// for the Relative addressing mode the returned address is the branch target.
// the target is relative to the PC after the operand has been consumed. the
// returned page crossed value for Relative mode is the page crossing of the
// branch, if it were to be taken.
//
// the returned address is meaningless for Implied and Accumulator modes.
func (mc *CPU) resolve(mode instructions.AddressingMode) (address uint16, crossed bool, err error) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false, nil

	case instructions.Immediate:
		address = mc.PC.Address()
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		return address, false, nil

	case instructions.Relative:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		address = mc.PC.Relative(v)
		return address, pageCrossed(mc.PC.Address(), address), nil

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		return uint16(v), false, nil

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)

		// index addition wraps around within the zero page
		if mode == instructions.ZeroPageIndexedX {
			v += mc.X.Value()
		} else {
			v += mc.Y.Value()
		}
		return uint16(v), false, nil

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		return address, false, err

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		base, err := mc.read16BitPC()
		if err != nil {
			return 0, false, err
		}
		if mode == instructions.AbsoluteIndexedX {
			address = base + mc.X.Address()
		} else {
			address = base + mc.Y.Address()
		}
		return address, pageCrossed(base, address), nil

	case instructions.IndexedIndirect:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		address, err = mc.read16BitZeroPage(v + mc.X.Value())
		return address, false, err

	case instructions.IndirectIndexed:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		base, err := mc.read16BitZeroPage(v)
		if err != nil {
			return 0, false, err
		}
		address = base + mc.Y.Address()
		return address, pageCrossed(base, address), nil

	case instructions.Indirect:
		pointer, err := mc.read16BitPC()
		if err != nil {
			return 0, false, err
		}

		lo, err := mc.read8Bit(pointer)
		if err != nil {
			return 0, false, err
		}

		// the high byte of the pointer is not incremented when the low byte
		// overflows
		hiPointer := (pointer & 0xff00) | uint16(uint8(pointer)+1)
		if pointer&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		hi, err := mc.read8Bit(hiPointer)
		if err != nil {
			return 0, false, err
		}

		return (uint16(hi) << 8) | uint16(lo), false, nil
	}

	return 0, false, nil
}
