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

// Package cpubus defines the interface the CPU uses to access memory and the
// addresses of the interrupt vectors.
package cpubus

import "fmt"

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus implements this interface as do all collaborators that attach
// themselves to an area of memory.
//
// Collaborators receive the address after it has been mapped to its primary
// mirror by the memorymap package.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peeker is implemented by collaborators that can be read without side
// effects. Used by debugging tools.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Access is the kind of memory access that caused an error.
type Access int

// List of valid Access values.
const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return fmt.Sprintf("access(%d)", int(a))
}

// AddressError is the pattern used to report an access to an address that has
// no owner or whose owner has rejected the access. Values are the Access kind
// and the address.
const AddressError = "address error: %s of (%#04x)"

// Interrupt and reset vectors. Each vector is a 16bit little-endian address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
