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

package registers_test

import (
	"testing"

	"github.com/gofami/gofami/hardware/cpu/registers"
	"github.com/gofami/gofami/hardware/cpu/registers/assert"
	"github.com/gofami/gofami/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Label(), "test")

	r8.Load(127)
	test.Equate(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.Equate(t, r8.Value(), 129)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(0, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.Value(), 0)

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), 1)

	// subtraction. carry is the inverse of borrow
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 10)
	test.Equate(t, carry, true)

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	test.Equate(t, r8.Value(), 0xfb)
	test.Equate(t, carry, false)

	// signed overflow on subtraction: -128 - 1
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 0x7f)
	test.Equate(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.Equate(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.Equate(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	test.Equate(t, r8.Value(), 0x7f)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	test.Equate(t, r8.Value(), 0xff)
	test.Equate(t, carry, false)

	r8.Load(0x40)
	test.Equate(t, r8.IsBitV(), true)
	test.Equate(t, r8.Address(), 0x40)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x8000)
	test.Equate(t, pc.Address(), 0x8000)

	pc.Advance(2)
	test.Equate(t, pc.Address(), 0x8002)

	pc.Jump(0xfffe)
	pc.Advance(3)
	test.Equate(t, pc.Address(), 0x0001)

	// signed displacement
	pc.Jump(0x8010)
	test.Equate(t, pc.Relative(0x10), 0x8020)
	test.Equate(t, pc.Relative(0xf0), 0x8000)
	test.Equate(t, pc.Relative(0x80), 0x7f90)
	test.Equate(t, pc.Address(), 0x8010)

	pc.Jump(0x0005)
	test.Equate(t, pc.Relative(0xf0), 0xfff5)
}

func TestStatus(t *testing.T) {
	var sr registers.Status
	assert.Status(t, sr, "nv-bdizc")
	test.Equate(t, sr.Value(), 0x20)

	sr.SetFlag(registers.Carry, true)
	sr.SetFlag(registers.Negative, true)
	assert.Status(t, sr, "Nv-bdizC")
	test.Equate(t, sr.Value(), 0xa1)

	sr.SetFlag(registers.Carry, false)
	assert.Status(t, sr, "Nv-bdizc")

	sr.DeriveZeroNegative(0x00)
	assert.Status(t, sr, "nv-bdiZc")
	sr.DeriveZeroNegative(0x80)
	assert.Status(t, sr, "Nv-bdizc")
	sr.DeriveZeroNegative(0x7f)
	assert.Status(t, sr, "nv-bdizc")

	// break and unused bits are discarded when loading from the stack
	sr.Load(0xff)
	assert.Status(t, sr, "NV-bDIZC")
	test.Equate(t, sr.IsSet(registers.Break), false)
	test.Equate(t, sr.IsSet(registers.Decimal), true)

	sr.Reset()
	assert.Status(t, sr, "nv-bdizc")
}
