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

// Bug describes a known hardware bug that was triggered by an instruction.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// the JMP (ind) instruction does not carry the low byte of the pointer
	// into the high byte. a pointer of $10ff will take the high byte of the
	// target from $1000 and not $1100
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
)
