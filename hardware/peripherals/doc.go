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

// Package peripherals contains the collaborators that are attached to the
// Registers and IO areas of the memory map. Neither the PPU nor the APU are
// emulated. A Registers bank stores the values written to it and returns them
// when read, which is enough for a program to run without AddressErrors.
//
// The first access of each register is recorded in the log. Later accesses
// are not.
package peripherals
