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

	"github.com/gofami/gofami/hardware/cpu/execution"
	"github.com/gofami/gofami/hardware/cpu/registers"
)

// Snapshot is a copy of the state of the CPU. Changing the fields of a
// Snapshot has no effect on the CPU it was taken from.
type Snapshot struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8

	Cycles      uint
	TotalCycles uint64

	NMI bool
	IRQ bool

	LastResult execution.Result
}

func (s Snapshot) String() string {
	var sr registers.Status
	sr.Restore(s.Status)
	return fmt.Sprintf("PC=%#04x A=%#02x X=%#02x Y=%#02x SP=%#02x SR=%s", s.PC, s.A, s.X, s.Y, s.SP, sr)
}

// Snapshot returns a copy of the current state of the CPU. Suitable for
// debuggers and for saving the state of the emulation.
func (mc *CPU) Snapshot() Snapshot {
	s := mc.saveRegisters()
	s.LastResult = mc.LastResult
	return s
}

// Plumb restores the state of the CPU from a Snapshot.
func (mc *CPU) Plumb(s Snapshot) {
	mc.restoreRegisters(s)
	mc.LastResult = s.LastResult
}

func (mc *CPU) saveRegisters() Snapshot {
	return Snapshot{
		PC:          mc.PC.Address(),
		A:           mc.A.Value(),
		X:           mc.X.Value(),
		Y:           mc.Y.Value(),
		SP:          mc.SP.Value(),
		Status:      mc.Status.Value() &^ uint8(registers.Unused),
		Cycles:      mc.Cycles,
		TotalCycles: mc.TotalCycles,
		NMI:         mc.nmi,
		IRQ:         mc.irq,
	}
}

func (mc *CPU) restoreRegisters(s Snapshot) {
	mc.PC.Jump(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.Restore(s.Status)
	mc.Cycles = s.Cycles
	mc.TotalCycles = s.TotalCycles
	mc.nmi = s.NMI
	mc.irq = s.IRQ
}
