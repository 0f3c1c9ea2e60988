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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/logger"
)

// Disassembly is a linear disassembly of an area of memory.
type Disassembly struct {
	Origin uint16
	Memtop uint16

	Entries []*Entry
}

// FromMemory disassembles memory from origin to memtop inclusive. Each
// instruction is assumed to start immediately after the previous instruction.
func FromMemory(mem Peeker, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, curated.Errorf("disassembly: memtop (%#04x) is less than origin (%#04x)", memtop, origin)
	}

	dsm := &Disassembly{
		Origin: origin,
		Memtop: memtop,
	}

	address := origin
	for {
		e, err := Decode(mem, address)
		if err != nil {
			return dsm, curated.Errorf("disassembly: %v", err)
		}
		dsm.Entries = append(dsm.Entries, e)

		next := address + uint16(e.Result.ByteCount)

		// stop at memtop or if the address has wrapped around
		if next > memtop || next <= address {
			break
		}
		address = next
	}

	logger.Logf(logger.Allow, "disassembly", "%d entries from %#04x to %#04x", len(dsm.Entries), origin, memtop)

	return dsm, nil
}

// Write the disassembly to the io.Writer. One entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, fmt.Sprintf("%s\n", e)); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}

// Grep writes the entries that contain the search string to the io.Writer.
// The search is not case sensitive unless caseSensitive is true.
func (dsm *Disassembly) Grep(output io.Writer, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0
	for _, e := range dsm.Entries {
		s := e.String()
		t := s
		if !caseSensitive {
			t = strings.ToUpper(s)
		}
		if strings.Contains(t, search) {
			matches++
			if _, err := io.WriteString(output, fmt.Sprintf("%s\n", s)); err != nil {
				return matches, curated.Errorf("disassembly: %v", err)
			}
		}
	}

	return matches, nil
}
