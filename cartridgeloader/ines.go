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

package cartridgeloader

import (
	"bytes"

	"github.com/gofami/gofami/curated"
)

// sizes of the data blocks in an iNES image.
const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	inesPRGUnit     = 0x4000
	inesCHRUnit     = 0x2000
	inesPRGRAMUnit  = 0x2000
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

func isINES(data []byte) bool {
	return len(data) >= len(inesMagic) && bytes.Equal(data[:len(inesMagic)], inesMagic)
}

// parseINES extracts the PRG data and the cartridge configuration from an
// iNES image. CHR data is counted but otherwise ignored.
func (cl *Loader) parseINES() error {
	if len(cl.Data) < inesHeaderSize {
		return curated.Errorf(ImageError, "iNES header is truncated")
	}

	hdr := cl.Data[:inesHeaderSize]
	flags6 := hdr[6]
	flags7 := hdr[7]

	prgUnits := int(hdr[4])
	if prgUnits == 0 {
		return curated.Errorf(ImageError, "iNES image has no PRG data")
	}

	cl.Mapper = (flags6 >> 4) | (flags7 & 0xf0)
	cl.Trainer = flags6&0x04 == 0x04
	cl.Battery = flags6&0x02 == 0x02
	cl.CHRSize = int(hdr[5]) * inesCHRUnit

	// a value of zero implies 8KB for compatibility
	cl.PRGRAMSize = int(hdr[8]) * inesPRGRAMUnit
	if cl.PRGRAMSize == 0 {
		cl.PRGRAMSize = inesPRGRAMUnit
	}

	origin := inesHeaderSize
	if cl.Trainer {
		origin += inesTrainerSize
	}

	memtop := origin + prgUnits*inesPRGUnit
	if len(cl.Data) < memtop {
		return curated.Errorf(ImageError, "iNES image is truncated")
	}

	cl.PRG = cl.Data[origin:memtop]

	return nil
}
