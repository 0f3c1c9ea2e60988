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

package registers

import (
	"strings"
)

// Flag identifies one bit of the Status register.
type Flag uint8

// List of valid Flag values. The value of each flag is the bit in the status
// register.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	Decimal          Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// Status is the register that holds the flags of the CPU.
type Status struct {
	value uint8
}

// Label returns the name of the status register.
func (sr Status) Label() string {
	return "SR"
}

// the characters used for each flag by String(), from bit 7 to bit 0
const flagChars = "NV-BDIZC"

// String returns a string of eight characters, one for each flag. A set flag
// is represented by an uppercase letter and an unset flag by a lowercase
// letter. The Unused bit is always represented by a hyphen. For example:
//
//	Nv-bdIzC
func (sr Status) String() string {
	s := strings.Builder{}
	for i := 0; i < 8; i++ {
		c := rune(flagChars[i])
		if c == '-' {
			s.WriteRune(c)
			continue
		}
		if sr.value&(0x80>>i) == 0 {
			c += 'a' - 'A'
		}
		s.WriteRune(c)
	}
	return s.String()
}

// Reset all flags.
func (sr *Status) Reset() {
	sr.value = 0
}

// SetFlag sets or clears a single flag. Other flags are unaffected.
func (sr *Status) SetFlag(flag Flag, v bool) {
	if v {
		sr.value |= uint8(flag)
	} else {
		sr.value &^= uint8(flag)
	}
}

// IsSet returns the state of a single flag.
func (sr Status) IsSet(flag Flag) bool {
	return sr.value&uint8(flag) == uint8(flag)
}

// DeriveZeroNegative sets the Zero flag if the result is zero and the
// Negative flag if bit 7 of the result is set.
func (sr *Status) DeriveZeroNegative(result uint8) {
	sr.SetFlag(Zero, result == 0)
	sr.SetFlag(Negative, result&0x80 == 0x80)
}

// Value returns the status register as an 8bit value suitable for pushing onto
// the stack. The Unused bit is always set.
func (sr Status) Value() uint8 {
	return sr.value | uint8(Unused)
}

// Load sets all flags from an 8bit value, as pulled from the stack for
// example. The Break and Unused bits do not exist in the status register and
// are discarded.
func (sr *Status) Load(v uint8) {
	sr.value = v &^ uint8(Break|Unused)
}

// Restore sets all flags exactly as they appear in the value. Used when
// restoring a snapshot.
func (sr *Status) Restore(v uint8) {
	sr.value = v
}
