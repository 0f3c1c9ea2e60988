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

package peripherals_test

import (
	"strings"
	"testing"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/hardware/peripherals"
	"github.com/gofami/gofami/logger"
	"github.com/gofami/gofami/test"
)

func TestLatching(t *testing.T) {
	ppu := peripherals.NewPPU()
	test.DemandSuccess(t, ppu.Write(0x2003, 0x7e))

	v, err := ppu.Read(0x2003)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x7e)

	v, err = ppu.Peek(0x2000)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x00)

	_, err = ppu.Read(0x2008)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))

	ppu.Reset()
	v, err = ppu.Read(0x2003)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x00)
}

func TestFirstAccessLogged(t *testing.T) {
	logger.Clear()

	io := peripherals.NewIO()
	test.DemandSuccess(t, io.Write(0x4015, 0x0f))
	test.DemandSuccess(t, io.Write(0x4015, 0x00))
	_, err := io.Read(0x4015)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	logger.Write(w)
	test.Equate(t, strings.Count(w.String(), "first write of 0x4015"), 1)
	test.Equate(t, strings.Count(w.String(), "first read of 0x4015"), 1)
}

func TestMirroredThroughBus(t *testing.T) {
	bus := memory.NewBus(nil)
	ppu := peripherals.NewPPU()
	test.DemandSuccess(t, bus.Attach(memorymap.Registers, ppu))
	test.DemandSuccess(t, bus.Attach(memorymap.IO, peripherals.NewIO()))

	// 0x3ff9 is a mirror of 0x2001
	test.DemandSuccess(t, bus.Write(0x3ff9, 0x1e))
	v, err := ppu.Peek(0x2001)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x1e)

	v, err = bus.Read(0x2009)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x1e)

	test.DemandSuccess(t, bus.Write(0x401f, 0x01))
	_, err = bus.Read(0x4020)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
}

func TestSnapshot(t *testing.T) {
	io := peripherals.NewIO()
	test.DemandSuccess(t, io.Poke(0x4000, 0x30))
	s := io.Snapshot()
	test.Equate(t, len(s), 0x20)
	test.Equate(t, s[0], 0x30)

	io.Reset()
	test.DemandSuccess(t, io.Plumb(s))
	v, err := io.Peek(0x4000)
	test.DemandSuccess(t, err)
	test.Equate(t, v, 0x30)

	test.ExpectFailure(t, io.Plumb(s[:1]))
	test.ExpectSuccess(t, strings.HasPrefix(io.String(), "APU/IO: 30 00"))
}
