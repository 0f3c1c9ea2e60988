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
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/hardware/cpu/registers"
	"github.com/gofami/gofami/hardware/memory/cpubus"
)

// operand returns the value of the operand. for the Immediate addressing mode
// the value has already been read during address resolution.
func (mc *CPU) operand(defn *instructions.Definition, address uint16) (uint8, error) {
	if defn.AddressingMode == instructions.Immediate {
		return uint8(mc.LastResult.InstructionData), nil
	}
	return mc.read8Bit(address)
}

// modify performs a read-modify-write operation on either the accumulator or
// the memory at the address. the result is used to update the Zero and
// Negative flags.
func (mc *CPU) modify(defn *instructions.Definition, address uint16, f func(r *registers.Register)) error {
	if defn.AddressingMode == instructions.Accumulator {
		f(&mc.A)
		mc.Status.DeriveZeroNegative(mc.A.Value())
		return nil
	}

	v, err := mc.read8Bit(address)
	if err != nil {
		return err
	}

	r := registers.NewRegister(v, "")
	f(&r)

	err = mc.write8Bit(address, r.Value())
	if err != nil {
		return err
	}

	mc.Status.DeriveZeroNegative(r.Value())
	return nil
}

// compare the register with the value. comparison is a subtraction with the
// result discarded.
func (mc *CPU) compare(reg registers.Register, v uint8) {
	r := registers.NewRegister(reg.Value(), "")
	carry, _ := r.Subtract(v, true)
	mc.Status.SetFlag(registers.Carry, carry)
	mc.Status.DeriveZeroNegative(r.Value())
}

// branch to the target address if the condition is true. a taken branch
// costs one extra cycle and another if the target is on a different page.
func (mc *CPU) branch(condition bool, target uint16, crossed bool) {
	mc.LastResult.BranchSuccess = condition
	if !condition {
		return
	}

	mc.LastResult.Cycles++
	if crossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Jump(target)
}

// load the register with the value and update the Zero and Negative flags.
func (mc *CPU) load(r *registers.Register, v uint8) {
	r.Load(v)
	mc.Status.DeriveZeroNegative(v)
}

// execute the operation of the instruction. the address is the effective
// address as returned by resolve().
func (mc *CPU) execute(defn *instructions.Definition, address uint16) error {
	switch defn.Operator {
	case instructions.NOP:

	case instructions.CLC:
		mc.Status.SetFlag(registers.Carry, false)
	case instructions.SEC:
		mc.Status.SetFlag(registers.Carry, true)
	case instructions.CLI:
		mc.Status.SetFlag(registers.InterruptDisable, false)
	case instructions.SEI:
		mc.Status.SetFlag(registers.InterruptDisable, true)
	case instructions.CLV:
		mc.Status.SetFlag(registers.Overflow, false)
	case instructions.CLD:
		mc.Status.SetFlag(registers.Decimal, false)
	case instructions.SED:
		mc.Status.SetFlag(registers.Decimal, true)

	case instructions.PHA:
		return mc.push(mc.A.Value())

	case instructions.PLA:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.load(&mc.A, v)

	case instructions.PHP:
		// the break flag is always set in the pushed value
		return mc.push(mc.Status.Value() | uint8(registers.Break))

	case instructions.PLP:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

	case instructions.TXA:
		mc.load(&mc.A, mc.X.Value())
	case instructions.TAX:
		mc.load(&mc.X, mc.A.Value())
	case instructions.TAY:
		mc.load(&mc.Y, mc.A.Value())
	case instructions.TYA:
		mc.load(&mc.A, mc.Y.Value())
	case instructions.TSX:
		mc.load(&mc.X, mc.SP.Value())
	case instructions.TXS:
		// the only transfer that does not affect the status flags
		mc.SP.Load(mc.X.Value())

	case instructions.INX:
		mc.load(&mc.X, mc.X.Value()+1)
	case instructions.INY:
		mc.load(&mc.Y, mc.Y.Value()+1)
	case instructions.DEX:
		mc.load(&mc.X, mc.X.Value()-1)
	case instructions.DEY:
		mc.load(&mc.Y, mc.Y.Value()-1)

	case instructions.LDA, instructions.LDX, instructions.LDY:
		v, err := mc.operand(defn, address)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.LDA:
			mc.load(&mc.A, v)
		case instructions.LDX:
			mc.load(&mc.X, v)
		case instructions.LDY:
			mc.load(&mc.Y, v)
		}

	case instructions.STA:
		return mc.write8Bit(address, mc.A.Value())
	case instructions.STX:
		return mc.write8Bit(address, mc.X.Value())
	case instructions.STY:
		return mc.write8Bit(address, mc.Y.Value())

	case instructions.ORA, instructions.AND, instructions.EOR:
		v, err := mc.operand(defn, address)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.ORA:
			mc.A.ORA(v)
		case instructions.AND:
			mc.A.AND(v)
		case instructions.EOR:
			mc.A.EOR(v)
		}
		mc.Status.DeriveZeroNegative(mc.A.Value())

	case instructions.ADC, instructions.SBC:
		v, err := mc.operand(defn, address)
		if err != nil {
			return err
		}

		// the decimal flag has no effect on the 2A03
		var carry, overflow bool
		if defn.Operator == instructions.ADC {
			carry, overflow = mc.A.Add(v, mc.Status.IsSet(registers.Carry))
		} else {
			carry, overflow = mc.A.Subtract(v, mc.Status.IsSet(registers.Carry))
		}
		mc.Status.SetFlag(registers.Carry, carry)
		mc.Status.SetFlag(registers.Overflow, overflow)
		mc.Status.DeriveZeroNegative(mc.A.Value())

	case instructions.CMP, instructions.CPX, instructions.CPY:
		v, err := mc.operand(defn, address)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.CMP:
			mc.compare(mc.A, v)
		case instructions.CPX:
			mc.compare(mc.X, v)
		case instructions.CPY:
			mc.compare(mc.Y, v)
		}

	case instructions.BIT:
		v, err := mc.operand(defn, address)
		if err != nil {
			return err
		}
		mc.Status.SetFlag(registers.Zero, mc.A.Value()&v == 0)
		mc.Status.SetFlag(registers.Negative, v&0x80 == 0x80)
		mc.Status.SetFlag(registers.Overflow, v&0x40 == 0x40)

	case instructions.ASL:
		return mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.SetFlag(registers.Carry, r.ASL())
		})
	case instructions.LSR:
		return mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.SetFlag(registers.Carry, r.LSR())
		})
	case instructions.ROL:
		return mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.SetFlag(registers.Carry, r.ROL(mc.Status.IsSet(registers.Carry)))
		})
	case instructions.ROR:
		return mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.SetFlag(registers.Carry, r.ROR(mc.Status.IsSet(registers.Carry)))
		})
	case instructions.INC:
		return mc.modify(defn, address, func(r *registers.Register) {
			r.Load(r.Value() + 1)
		})
	case instructions.DEC:
		return mc.modify(defn, address, func(r *registers.Register) {
			r.Load(r.Value() - 1)
		})

	case instructions.BPL, instructions.BMI, instructions.BVC, instructions.BVS,
		instructions.BCC, instructions.BCS, instructions.BNE, instructions.BEQ:
		var condition bool
		switch defn.Operator {
		case instructions.BPL:
			condition = !mc.Status.IsSet(registers.Negative)
		case instructions.BMI:
			condition = mc.Status.IsSet(registers.Negative)
		case instructions.BVC:
			condition = !mc.Status.IsSet(registers.Overflow)
		case instructions.BVS:
			condition = mc.Status.IsSet(registers.Overflow)
		case instructions.BCC:
			condition = !mc.Status.IsSet(registers.Carry)
		case instructions.BCS:
			condition = mc.Status.IsSet(registers.Carry)
		case instructions.BNE:
			condition = !mc.Status.IsSet(registers.Zero)
		case instructions.BEQ:
			condition = mc.Status.IsSet(registers.Zero)
		}
		mc.branch(condition, address, pageCrossed(mc.PC.Address(), address))

	case instructions.JMP:
		mc.PC.Jump(address)

	case instructions.JSR:
		// the return address pushed to the stack is the address of the last
		// byte of the JSR instruction
		err := mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Jump(address)

	case instructions.RTS:
		v, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Jump(v)
		mc.PC.Advance(1)

	case instructions.BRK:
		// the byte after the BRK opcode is skipped but is not part of the
		// instruction
		mc.PC.Advance(1)
		err := mc.push16(mc.PC.Address())
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.Value() | uint8(registers.Break))
		if err != nil {
			return err
		}
		mc.Status.SetFlag(registers.InterruptDisable, true)
		return mc.LoadPCIndirect(cpubus.IRQ)

	case instructions.RTI:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)
		pc, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Jump(pc)

	default:
		return curated.Errorf("cpu: unsupported operator (%s)", defn.Operator)
	}

	return nil
}
