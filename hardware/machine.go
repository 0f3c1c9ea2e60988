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

package hardware

import (
	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/hardware/cpu"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cartridge"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/hardware/peripherals"
	"github.com/gofami/gofami/hardware/preferences"
	"github.com/gofami/gofami/logger"
)

// Machine is the emulated hardware.
type Machine struct {
	Prefs *preferences.Preferences

	CPU  *cpu.CPU
	Mem  *memory.Bus
	Cart *cartridge.Cartridge

	// placeholders for the PPU and APU
	PPU *peripherals.Registers
	IO  *peripherals.Registers

	// number of instructions executed since the last reset
	Instructions uint64

	// previous states of the machine. see RecordHistory()
	history *history
}

// NewMachine creates a new machine and everything associated with the
// hardware. The prefs argument can be nil.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{
		Prefs: prefs,
		Mem:   memory.NewBus(prefs),
		Cart:  cartridge.NewCartridge(prefs),
		PPU:   peripherals.NewPPU(),
		IO:    peripherals.NewIO(),
	}

	m.CPU = cpu.NewCPU(prefs, m.Mem)

	if err := m.Mem.Attach(memorymap.Registers, m.PPU); err != nil {
		return nil, err
	}
	if err := m.Mem.Attach(memorymap.IO, m.IO); err != nil {
		return nil, err
	}
	if err := m.Mem.Attach(memorymap.Cartridge, m.Cart); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// AttachCartridge attaches the program image to the machine and resets it. An
// empty filename in the loader ejects the cartridge.
func (m *Machine) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" && !cartload.HasLoaded() {
		m.Cart.Eject()
		logger.Log(logger.Allow, "cartridge", "ejected")
		return nil
	}

	if err := m.Cart.Attach(cartload); err != nil {
		return err
	}

	return m.Reset()
}

// Reset the machine. RAM, PRG RAM and the peripheral registers are cleared
// (or randomised depending on the preferences) and the CPU takes the reset
// vector.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	m.Cart.Reset()
	m.PPU.Reset()
	m.IO.Reset()
	m.Instructions = 0
	if m.history != nil {
		m.history.clear()
	}
	return m.CPU.Reset()
}
