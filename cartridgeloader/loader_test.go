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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/test"
)

// prg returns PRG data of the specified size with the reset vector set.
func prg(size int, reset uint16) []byte {
	d := make([]byte, size)
	d[size-4] = uint8(reset)
	d[size-3] = uint8(reset >> 8)
	return d
}

func ines(prgUnits int, flags6 uint8, flags7 uint8, reset uint16) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prgUnits), 1, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		trainer := make([]byte, 512)
		for i := range trainer {
			trainer[i] = 0xee
		}
		d = append(d, trainer...)
	}
	if prgUnits > 0 {
		d = append(d, prg(prgUnits*0x4000, reset)...)
	}

	// CHR data
	d = append(d, make([]byte, 0x2000)...)
	return d
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestINES(t *testing.T) {
	fn := writeFile(t, "test.nes", ines(1, 0x00, 0x00, 0xc000))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())

	test.ExpectEquality(t, cl.Format, cartridgeloader.FormatINES)
	test.Equate(t, len(cl.PRG), 0x4000)
	test.Equate(t, cl.Mapper, 0)
	test.Equate(t, cl.CHRSize, 0x2000)
	test.Equate(t, cl.PRGRAMSize, 0x2000)
	test.Equate(t, cl.ResetVector, 0xc000)
	test.Equate(t, cl.ShortName(), "test")
	test.Equate(t, len(cl.Hash), 40)
}

func TestINESTrainer(t *testing.T) {
	cl := cartridgeloader.Loader{
		Filename: "trainer.nes",
		Data:     ines(2, 0x04, 0x00, 0x8000),
	}
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.Trainer)
	test.Equate(t, len(cl.PRG), 0x8000)

	// the first byte of the PRG data is not trainer data
	test.Equate(t, cl.PRG[0], 0x00)
	test.Equate(t, cl.ResetVector, 0x8000)
}

func TestINESMapper(t *testing.T) {
	cl := cartridgeloader.Loader{
		Filename: "mmc1.nes",
		Data:     ines(1, 0x10, 0x00, 0x8000),
	}
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.ImageError))
	test.Equate(t, cl.Mapper, 1)
	test.ExpectFailure(t, cl.HasLoaded())

	// upper nibble of the mapper number is in flags 7
	cl = cartridgeloader.Loader{
		Filename: "mapper66.nes",
		Data:     ines(1, 0x20, 0x40, 0x8000),
	}
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.ImageError))
	test.Equate(t, cl.Mapper, 0x42)
}

func TestINESErrors(t *testing.T) {
	var cl cartridgeloader.Loader

	// no PRG data
	cl = cartridgeloader.Loader{Filename: "empty.nes", Data: ines(0, 0, 0, 0)}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))

	// truncated PRG data
	cl = cartridgeloader.Loader{Filename: "short.nes", Data: ines(2, 0, 0, 0x8000)[:0x5000]}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))

	// truncated header
	cl = cartridgeloader.Loader{Filename: "header.nes", Data: []byte{'N', 'E', 'S', 0x1a, 0x01}}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))

	// file extension claims iNES but there is no magic
	cl = cartridgeloader.Loader{Filename: "nomagic.nes", Data: prg(0x8000, 0x8000)}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))

	// reset vector outside of the cartridge ROM
	cl = cartridgeloader.Loader{Filename: "vector.nes", Data: ines(1, 0, 0, 0x0200)}
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.ImageError))
	test.Equate(t, err.Error(), "cartridgeloader: image error: reset vector (0x0200) is outside the cartridge ROM")
}

func TestRaw(t *testing.T) {
	fn := writeFile(t, "test.bin", prg(0x8000, 0x8123))
	cl := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Format, cartridgeloader.FormatRaw)
	test.Equate(t, len(cl.PRG), 0x8000)
	test.Equate(t, cl.ResetVector, 0x8123)

	cl = cartridgeloader.Loader{Filename: "small.bin", Data: prg(0x2000, 0x8000)}
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.ImageError))
	test.Equate(t, err.Error(), "cartridgeloader: image error: image is too small (8192 bytes)")

	cl = cartridgeloader.Loader{Filename: "odd.bin", Data: prg(0x6000, 0x8000)}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))

	cl = cartridgeloader.Loader{Filename: "vector.bin", Data: prg(0x4000, 0x6000)}
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.ImageError))
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, curated.Is(err, cartridgeloader.ImageError))

	cl = cartridgeloader.NewLoader("ftp://example.com/test.nes")
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.Loader{Filename: "hash.bin", Data: prg(0x4000, 0x8000), Hash: "0000"}
	test.ExpectFailure(t, cl.Load())
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsRecognised("roms/test.nes"))
	test.ExpectSuccess(t, cartridgeloader.IsRecognised("roms/test.NeS"))
	test.ExpectSuccess(t, cartridgeloader.IsRecognised("roms/test.bin"))
	test.ExpectFailure(t, cartridgeloader.IsRecognised("roms/test.txt"))
	test.ExpectFailure(t, cartridgeloader.IsRecognised("roms/test"))
}
