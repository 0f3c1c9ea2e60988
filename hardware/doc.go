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

// Package hardware is the base package for the emulated machine. The Machine
// type ties together the CPU, the memory bus and the collaborators attached to
// the bus.
//
// The machine is driven either one cycle at a time with Tick(), one
// instruction at a time with Step(), or continuously with the Run() functions.
// In all cases the CPU only executes an instruction once the cycle counter
// of the previous instruction has drained to zero.
//
// The state of the machine can be saved and restored with SaveState() and
// LoadState(). The Snapshot() and Plumb() functions do the same but without
// serialisation.
package hardware
