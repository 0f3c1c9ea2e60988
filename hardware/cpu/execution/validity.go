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

package execution

import (
	"github.com/gofami/gofami/curated"
)

// the number of cycles taken to service an interrupt.
const interruptCycles = 7

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Interrupt != NoInterrupt {
		if r.Defn != nil {
			return curated.Errorf("cpu: interrupt result has an instruction definition")
		}
		if r.Cycles != interruptCycles {
			return curated.Errorf("cpu: number of cycles wrong for %s (%d instead of %d)", r.Interrupt, r.Cycles, interruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic())
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode of opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic(), r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles

	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
	} else if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
