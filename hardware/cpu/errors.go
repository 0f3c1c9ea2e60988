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

// IllegalOpcode is returned when the CPU encounters an opcode that is not
// part of the documented instruction set. Values are the opcode and the
// address of the opcode.
const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"

// CyclesOwed is returned when ExecuteInstruction() is called before the
// cycles of the previous instruction have been drained with Tick().
const CyclesOwed = "cpu: cannot execute instruction with %d cycles owed"
