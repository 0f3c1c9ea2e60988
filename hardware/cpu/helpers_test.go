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

package cpu_test

import (
	"testing"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/cpu"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/test"
)

// mockMem is a flat 64KB memory. addresses in the range 0x5000 to 0x5fff
// cannot be read or written.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func isUnowned(address uint16) bool {
	return address&0xf000 == 0x5000
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if isUnowned(address) {
		return 0, curated.Errorf(cpubus.AddressError, cpubus.Read, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if isUnowned(address) {
		return curated.Errorf(cpubus.AddressError, cpubus.Write, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// origin of the test programs. the reset vector points to this address
const origin = uint16(0x8000)

func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.setVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, mc.Reset())
	return mc, mem
}

// drain the cycle counter and execute the next instruction. the result of the
// instruction is checked for validity.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for !mc.Tick() {
	}
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.LastResult.IsValid())
}
