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
	"encoding/gob"
	"io"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/cpu"
	"github.com/gofami/gofami/hardware/cpu/instructions"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/logger"
)

// StateError is returned when a saved state cannot be restored.
const StateError = "state: %v"

// State stores the state of the machine. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The cartridge ROM is not part of the state. The hash of the cartridge is
// stored instead and must match when the state is plumbed.
type State struct {
	Hash         string
	Instructions uint64

	CPU    cpu.Snapshot
	RAM    []uint8
	PRGRAM []uint8
	PPU    []uint8
	IO     []uint8
}

// Snapshot the state of the machine. The returned State shares nothing with
// the machine.
func (m *Machine) Snapshot() *State {
	s := &State{
		Hash:         m.Cart.Hash,
		Instructions: m.Instructions,
		CPU:          m.CPU.Snapshot(),
		RAM:          m.Mem.Snapshot().Bytes(),
		PPU:          m.PPU.Snapshot(),
		IO:           m.IO.Snapshot(),
	}
	if ram := m.Cart.Snapshot(); ram != nil {
		s.PRGRAM = ram.Bytes()
	}
	return s
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(s *State) error {
	if s == nil {
		return curated.Errorf(StateError, "cannot plumb a nil state")
	}

	if s.Hash != m.Cart.Hash {
		return curated.Errorf(StateError, "state is for a different cartridge")
	}

	ram := memory.NewAddressSpace(len(s.RAM))
	if err := ram.Load(s.RAM); err != nil {
		return curated.Errorf(StateError, err)
	}
	if err := m.Mem.Plumb(ram); err != nil {
		return curated.Errorf(StateError, err)
	}
	if err := m.Cart.Plumb(s.PRGRAM); err != nil {
		return curated.Errorf(StateError, err)
	}
	if err := m.PPU.Plumb(s.PPU); err != nil {
		return curated.Errorf(StateError, err)
	}
	if err := m.IO.Plumb(s.IO); err != nil {
		return curated.Errorf(StateError, err)
	}

	c := s.CPU

	// the instruction definition should refer to the canonical table and not
	// to a copy
	if c.LastResult.Defn != nil {
		c.LastResult.Defn = &instructions.Definitions[c.LastResult.Defn.OpCode]
	}

	m.CPU.Plumb(c)
	m.Instructions = s.Instructions

	return nil
}

// SaveState writes the state of the machine to the io.Writer.
func (m *Machine) SaveState(w io.Writer) error {
	err := gob.NewEncoder(w).Encode(m.Snapshot())
	if err != nil {
		return curated.Errorf(StateError, err)
	}
	logger.Logf(logger.Allow, "state", "saved state after %d instructions", m.Instructions)
	return nil
}

// LoadState reads a state from the io.Reader and plumbs it into the machine.
// The machine is not changed if the state cannot be restored.
func (m *Machine) LoadState(r io.Reader) error {
	var s State
	err := gob.NewDecoder(r).Decode(&s)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	// plumbing is not atomic so take a snapshot to restore if it fails
	restore := m.Snapshot()
	if err := m.Plumb(&s); err != nil {
		_ = m.Plumb(restore)
		return err
	}

	logger.Logf(logger.Allow, "state", "loaded state at %d instructions", m.Instructions)

	return nil
}
