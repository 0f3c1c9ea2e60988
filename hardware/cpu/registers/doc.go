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

// Package registers implements the registers of the 6502. There are three
// types: the 8bit Register used for the accumulator, the index registers and
// the stack pointer; the 16bit ProgramCounter; and the Status register which
// holds the processor flags.
//
// Register has methods for the arithmetic and logical operations that can be
// performed on it. The results of these operations that affect the status
// flags (carry and overflow) are returned to the caller. Updating the Status
// register is the responsibility of the caller.
package registers
