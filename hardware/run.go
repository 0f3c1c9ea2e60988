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
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/govern"
	"github.com/gofami/gofami/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and can be nil.
//
// Run() returns when continueCheck() returns the Ending state or when an
// instruction fails. The machine is left in a consistent state in either
// case and emulation can be resumed.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Stepping:
			err = m.Step()
			if err != nil {
				logger.Logf(logger.Allow, "CPU", "halted after %d instructions: %v", m.Instructions, err)
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount runs the emulation for the specified number of
// instructions. A count of zero means there is no limit. The continueCheck
// function can be nil.
func (m *Machine) RunForInstructionCount(count uint64, continueCheck func(instructions uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (govern.State, error) { return govern.Running, nil }
	}

	target := m.Instructions + count

	return m.Run(func() (govern.State, error) {
		if count > 0 && m.Instructions >= target {
			return govern.Ending, nil
		}
		return continueCheck(m.Instructions)
	})
}
