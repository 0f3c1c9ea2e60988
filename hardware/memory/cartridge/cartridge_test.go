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

package cartridge_test

import (
	"testing"

	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cartridge"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/test"
)

func loader(t *testing.T, size int) cartridgeloader.Loader {
	t.Helper()

	prg := make([]byte, size)
	for i := range prg {
		prg[i] = uint8(i >> 8)
	}

	// reset vector
	prg[size-4] = 0x00
	prg[size-3] = 0x80

	cl := cartridgeloader.Loader{
		Filename: "test.bin",
		Data:     prg,
	}
	test.DemandSuccess(t, cl.Load())
	return cl
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	test.ExpectSuccess(t, cart.IsEjected())

	_, err := cart.Read(0x8000)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectSuccess(t, curated.Is(cart.Write(0x6000, 0x01), cpubus.AddressError))
	test.Equate(t, cart.Snapshot() == nil, true)
}

func TestNROM128(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(loader(t, 0x4000)))
	test.ExpectFailure(t, cart.IsEjected())
	test.Equate(t, cart.ID(), "NROM")

	// the 16KB ROM is mirrored
	for _, a := range []uint16{0x8000, 0x8123, 0xbfff} {
		lo, err := cart.Read(a)
		test.DemandSuccess(t, err)
		hi, err := cart.Read(a + 0x4000)
		test.DemandSuccess(t, err)
		test.Equate(t, lo, hi)
		test.Equate(t, lo, uint8((a-0x8000)>>8))
	}

	v, err := cart.Read(cpubus.Reset)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, err = cart.Read(cpubus.Reset + 1)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x80)
}

func TestNROM256(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(loader(t, 0x8000)))

	v, err := cart.Read(0xc100)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x41)
}

func TestNROMAccess(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(loader(t, 0x4000)))

	// PRG RAM
	test.DemandSuccess(t, cart.Write(memorymap.OriginPRGRAM, 0x12))
	test.DemandSuccess(t, cart.Write(memorymap.MemtopPRGRAM, 0x34))
	v, err := cart.Read(memorymap.OriginPRGRAM)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x12)
	v, err = cart.Peek(memorymap.MemtopPRGRAM)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x34)

	// ROM is read only
	err = cart.Write(0x8000, 0xff)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.Equate(t, err.Error(), "address error: write of (0x8000)")

	// unowned part of the cartridge area
	_, err = cart.Read(memorymap.OriginCart)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectSuccess(t, curated.Is(cart.Write(0x5fff, 0x00), cpubus.AddressError))

	// poking the ROM is allowed and affects the mirror
	test.DemandSuccess(t, cart.Poke(0x8010, 0xaa))
	v, err = cart.Read(0xc010)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0xaa)
}

func TestSnapshotAndPlumb(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(loader(t, 0x4000)))
	test.DemandSuccess(t, cart.Write(0x6001, 0x99))

	s := cart.Snapshot()
	test.Equate(t, s.Size(), 0x2000)

	test.DemandSuccess(t, cart.Write(0x6001, 0x00))
	test.DemandSuccess(t, cart.Plumb(s.Bytes()))
	v, err := cart.Read(0x6001)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x99)

	test.ExpectFailure(t, cart.Plumb(make([]byte, 10)))
}

func TestAttachToBus(t *testing.T) {
	bus := memory.NewBus(nil)
	cart := cartridge.NewCartridge(nil)
	test.DemandSuccess(t, cart.Attach(loader(t, 0x4000)))
	test.DemandSuccess(t, bus.Attach(memorymap.Cartridge, cart))

	v, err := bus.Read(0xfffd)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x80)

	v, err = bus.Peek(0x8100)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x01)

	test.DemandSuccess(t, bus.Poke(0x8100, 0x55))
	v, err = bus.Read(0xc100)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x55)
}

func TestUnsupportedMapper(t *testing.T) {
	cl := cartridgeloader.Loader{Filename: "mmc1.nes", Mapper: 1, PRG: make([]byte, 0x4000)}
	cart := cartridge.NewCartridge(nil)
	test.ExpectFailure(t, cart.Attach(cl))
	test.ExpectSuccess(t, cart.IsEjected())
}
