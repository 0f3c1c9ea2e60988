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
	"fmt"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/cpu/execution"
	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/hardware/cpu/registers"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/logger"
)

// CPU implements the 6502 found in the 2A03.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.Status

	mem cpubus.Memory

	// the number of cycles owed by the most recent instruction. must be zero
	// before the next instruction can be executed. see Tick()
	Cycles uint

	// the number of cycles charged since power-on
	TotalCycles uint64

	// the result of the most recent call to ExecuteInstruction(). only valid
	// if LastResult.Final is true
	LastResult execution.Result

	// interrupt lines. serviced at the start of the next call to
	// ExecuteInstruction()
	nmi bool
	irq bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil.
//
// The CPU must be Reset() before it is used.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:  prefs,
		mem:    mem,
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		PC:     registers.NewProgramCounter(0),
		Status: registers.Status{},
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// Reset the CPU. The program counter is loaded from the reset vector and the
// cycle counter is cleared. Resetting can only happen between instructions.
//
// If the RandomState preference is set then the A, X and Y registers are
// randomised.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Cycles = 0
	mc.nmi = false
	mc.irq = false

	if mc.prefs != nil && mc.prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.X.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.Y.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.SetFlag(registers.InterruptDisable, true)

	err := mc.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "CPU", "reset: PC=%s", mc.PC)

	return nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Jump(address)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Jump(directAddress)
}

// Tick drains one cycle from the cycle counter. Returns true if the counter
// is zero and the next instruction can be executed.
func (mc *CPU) Tick() bool {
	if mc.Cycles > 0 {
		mc.Cycles--
	}
	return mc.Cycles == 0
}

// RequestNMI raises the non-maskable interrupt line. The interrupt will be
// serviced before the next instruction.
func (mc *CPU) RequestNMI() {
	mc.nmi = true
}

// RequestIRQ raises the interrupt request line. The interrupt will be
// serviced before the next instruction if the InterruptDisable flag is clear.
// The request remains pending until it is serviced.
func (mc *CPU) RequestIRQ() {
	mc.irq = true
}

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit reads a little-endian word. the address of the high byte wraps
// around at the top of memory.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage reads a little-endian word from the zero page. the
// address of the high byte wraps around within the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read8BitPC reads the byte at the PC and advances the PC by one.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Advance(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16BitPC reads the little-endian word at the PC and advances the PC by
// two. the value is stored as the InstructionData of the LastResult.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v
	return v, nil
}

func (mc *CPU) push(v uint8) error {
	err := mc.write8Bit(0x0100|mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(0x0100 | mc.SP.Address())
}

func (mc *CPU) push16(v uint16) error {
	if err := mc.push(uint8(v >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// ExecuteInstruction steps the CPU forward one instruction, or services a
// pending interrupt. The number of cycles taken is added to the Cycles field.
//
// Returns an error with the CyclesOwed pattern if the Cycles field is not
// zero. Undocumented opcodes are refused with the IllegalOpcode pattern.
//
// On error the registers and cycle counters are unchanged.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Cycles > 0 {
		return curated.Errorf(CyclesOwed, mc.Cycles)
	}

	saved := mc.saveRegisters()

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	var err error

	switch {
	case mc.nmi:
		err = mc.interrupt(execution.NMI, cpubus.NMI)
		if err == nil {
			mc.nmi = false
		}
	case mc.irq && !mc.Status.IsSet(registers.InterruptDisable):
		err = mc.interrupt(execution.IRQ, cpubus.IRQ)
		if err == nil {
			mc.irq = false
		}
	default:
		err = mc.decode()
	}

	if err != nil {
		mc.restoreRegisters(saved)
		mc.LastResult.Reset()
		return err
	}

	mc.LastResult.Final = true
	mc.Cycles = uint(mc.LastResult.Cycles)
	mc.TotalCycles += uint64(mc.LastResult.Cycles)

	return nil
}

// decode and execute the instruction at the PC.
func (mc *CPU) decode() error {
	// the opcode is read without advancing the PC so that nothing changes if
	// the opcode is illegal
	opcode, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return err
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		logger.Logf(logger.Allow, "CPU", "illegal opcode %#02x at %#04x", opcode, mc.PC.Address())
		return curated.Errorf(IllegalOpcode, opcode, mc.PC.Address())
	}

	mc.PC.Advance(1)
	mc.LastResult.ByteCount++
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	address, pageCrossed, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return err
	}

	if defn.PageSensitive && pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	return mc.execute(defn, address)
}

// interrupt pushes the PC and status register and loads the PC from the
// vector.
func (mc *CPU) interrupt(kind execution.Interrupt, vector uint16) error {
	mc.LastResult.Interrupt = kind
	mc.LastResult.Cycles = 7

	if err := mc.push16(mc.PC.Address()); err != nil {
		return err
	}
	if err := mc.push(mc.Status.Value() &^ uint8(registers.Break)); err != nil {
		return err
	}
	mc.Status.SetFlag(registers.InterruptDisable, true)

	return mc.LoadPCIndirect(vector)
}
