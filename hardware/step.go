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

// Tick advances the machine by one CPU cycle. The next instruction is executed
// when the cycle counter of the previous instruction has drained. Returns true
// if an instruction was executed.
func (m *Machine) Tick() (bool, error) {
	if !m.CPU.Tick() {
		return false, nil
	}
	if err := m.execute(); err != nil {
		return false, err
	}
	return true, nil
}

// Step the machine one CPU instruction. Any cycles owed by the previous
// instruction are drained first.
func (m *Machine) Step() error {
	for !m.CPU.Tick() {
	}
	return m.execute()
}

func (m *Machine) execute() error {
	if m.history != nil {
		m.history.push(m.Snapshot())
	}

	err := m.CPU.ExecuteInstruction()
	if err != nil {
		if m.history != nil {
			m.history.pop()
		}
		return err
	}

	m.Instructions++

	return nil
}
