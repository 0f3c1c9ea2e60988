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

package memory_test

import (
	"testing"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/test"
)

// recorder is a collaborator that remembers every access.
type recorder struct {
	writes map[uint16]uint8
	reads  []uint16
}

func newRecorder() *recorder {
	return &recorder{writes: make(map[uint16]uint8)}
}

func (r *recorder) Read(address uint16) (uint8, error) {
	r.reads = append(r.reads, address)
	return r.writes[address], nil
}

func (r *recorder) Write(address uint16, data uint8) error {
	r.writes[address] = data
	return nil
}

func TestAddressSpace(t *testing.T) {
	as := memory.NewAddressSpace(16)
	test.Equate(t, as.Size(), 16)

	test.ExpectSuccess(t, as.Write(15, 0xaa))
	v, err := as.Read(15)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0xaa)

	_, err = as.Read(16)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	err = as.Write(-1, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	test.ExpectFailure(t, as.Load(make([]uint8, 8)))
}

func TestRAMMirroring(t *testing.T) {
	bus := memory.NewBus(nil)

	test.DemandSuccess(t, bus.Write(0x0010, 0x57))
	for _, a := range []uint16{0x0010, 0x0810, 0x1010, 0x1810} {
		v, err := bus.Read(a)
		test.ExpectSuccess(t, err)
		test.Equate(t, v, 0x57)
	}

	test.DemandSuccess(t, bus.Write(0x1fff, 0x01))
	v, _ := bus.Read(0x07ff)
	test.Equate(t, v, 0x01)
}

func TestUnownedAccess(t *testing.T) {
	bus := memory.NewBus(nil)

	for _, a := range []uint16{0x2000, 0x3fff, 0x4016, 0x4020, 0x8000, 0xfffc} {
		_, err := bus.Read(a)
		test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError), a)
		err = bus.Write(a, 0)
		test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError), a)
	}

	_, err := bus.Read(0x8000)
	test.Equate(t, err.Error(), "address error: read of (0x8000)")
	err = bus.Write(0x4020, 0)
	test.Equate(t, err.Error(), "address error: write of (0x4020)")
}

func TestForwarding(t *testing.T) {
	bus := memory.NewBus(nil)

	regs := newRecorder()
	io := newRecorder()
	cart := newRecorder()
	test.DemandSuccess(t, bus.Attach(memorymap.Registers, regs))
	test.DemandSuccess(t, bus.Attach(memorymap.IO, io))
	test.DemandSuccess(t, bus.Attach(memorymap.Cartridge, cart))

	// register window repeats every eight bytes
	test.DemandSuccess(t, bus.Write(0x3456, 0x10))
	test.Equate(t, regs.writes[0x2006], 0x10)
	v, err := bus.Read(0x200e)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0x10)
	test.Equate(t, regs.reads[0], 0x2006)

	// I/O and cartridge windows are forwarded verbatim
	test.DemandSuccess(t, bus.Write(0x4016, 0x01))
	test.Equate(t, io.writes[0x4016], 0x01)
	test.DemandSuccess(t, bus.Write(0x8123, 0x02))
	test.Equate(t, cart.writes[0x8123], 0x02)

	test.Equate(t, bus.LastAccessAddress, 0x8123)
	test.ExpectSuccess(t, bus.LastAccessWrite)

	// cannot attach to RAM
	test.ExpectFailure(t, bus.Attach(memorymap.RAM, newRecorder()))

	// detaching restores the error condition
	test.DemandSuccess(t, bus.Attach(memorymap.IO, nil))
	_, err = bus.Read(0x4016)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
}

func TestPeekPoke(t *testing.T) {
	bus := memory.NewBus(nil)
	test.DemandSuccess(t, bus.Attach(memorymap.Cartridge, newRecorder()))

	test.DemandSuccess(t, bus.Poke(0x0901, 0x33))
	v, err := bus.Peek(0x0101)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0x33)

	// recorder does not implement Peeker or Poker
	_, err = bus.Peek(0x8000)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	err = bus.Poke(0x8000, 0)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))

	// peek and poke do not count as bus activity
	test.Equate(t, bus.LastAccessAddress, 0)
}

func TestSnapshot(t *testing.T) {
	bus := memory.NewBus(nil)
	test.DemandSuccess(t, bus.Write(0x0000, 0x01))

	s := bus.Snapshot()
	test.DemandSuccess(t, bus.Write(0x0000, 0x02))
	v, _ := s.Read(0)
	test.Equate(t, v, 0x01)

	test.DemandSuccess(t, bus.Plumb(s))
	v, _ = bus.Read(0x0000)
	test.Equate(t, v, 0x01)
}
