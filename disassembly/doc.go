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

// Package disassembly renders machine code as assembly language. Decoding is
// driven entirely by the instruction definitions table in the instructions
// package and memory is read with Peek() so that disassembly never affects
// the state of the machine.
//
// Instructions that have been executed by the CPU can also be formatted with
// FormatResult(). In that case the entry will show the number of cycles
// actually used by the instruction rather than the number of cycles in the
// instruction definition.
//
// Operands that refer to PPU, APU or I/O registers are replaced by the
// canonical name of the register.
package disassembly
