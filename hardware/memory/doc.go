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

// Package memory implements the memory bus of the 2A03. The Bus type decodes
// every address issued by the CPU and either services the access from the
// internal RAM or forwards it to the collaborator attached to the area.
//
// Address decoding is handled by the memorymap package. The internal RAM is
// an AddressSpace of memorymap.RAMSize bytes and is owned exclusively by the
// Bus.
//
// Collaborators are attached to the Registers, IO and Cartridge areas with the
// Attach() function. An access to an area with no collaborator is an error
// with the cpubus.AddressError pattern.
package memory
