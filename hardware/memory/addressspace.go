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

package memory

import (
	"encoding/hex"

	"github.com/gofami/gofami/curated"
)

// OutOfRange is the pattern used when an index is outside the range of an
// AddressSpace.
const OutOfRange = "address space: index out of range (%#04x)"

// AddressSpace is a fixed size store of bytes with bounds checked access.
type AddressSpace struct {
	data []uint8
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type.
func NewAddressSpace(size int) *AddressSpace {
	return &AddressSpace{
		data: make([]uint8, size),
	}
}

// Size returns the number of bytes in the address space.
func (as *AddressSpace) Size() int {
	return len(as.data)
}

func (as *AddressSpace) String() string {
	return hex.Dump(as.data)
}

// Read the byte at the index.
func (as *AddressSpace) Read(idx int) (uint8, error) {
	if idx < 0 || idx >= len(as.data) {
		return 0, curated.Errorf(OutOfRange, idx)
	}
	return as.data[idx], nil
}

// Write the byte at the index.
func (as *AddressSpace) Write(idx int, data uint8) error {
	if idx < 0 || idx >= len(as.data) {
		return curated.Errorf(OutOfRange, idx)
	}
	as.data[idx] = data
	return nil
}

// Fill every byte with the value returned by the function.
func (as *AddressSpace) Fill(f func() uint8) {
	for i := range as.data {
		as.data[i] = f()
	}
}

// Bytes returns a copy of the contents of the address space.
func (as *AddressSpace) Bytes() []uint8 {
	c := make([]uint8, len(as.data))
	copy(c, as.data)
	return c
}

// Load replaces the contents of the address space. The length of data must
// match the size of the address space.
func (as *AddressSpace) Load(data []uint8) error {
	if len(data) != len(as.data) {
		return curated.Errorf("address space: cannot load %d bytes into %d", len(data), len(as.data))
	}
	copy(as.data, data)
	return nil
}

// Snapshot creates a copy of the address space in its current state.
func (as *AddressSpace) Snapshot() *AddressSpace {
	return &AddressSpace{data: as.Bytes()}
}
