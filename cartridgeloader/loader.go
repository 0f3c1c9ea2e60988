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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/hardware/memory/cpubus"
	"github.com/gofami/gofami/hardware/memory/memorymap"
	"github.com/gofami/gofami/logger"
)

// ImageError is returned when the program image is unusable.
const ImageError = "cartridgeloader: image error: %v"

// sizes of raw images.
const (
	RawSize16K = 0x4000
	RawSize32K = 0x8000
)

// MinImageSize is the smallest PRG image that can be attached.
const MinImageSize = RawSize16K

// Loader is used to specify the program image to use when attaching to the
// machine.
type Loader struct {
	// filename of image to load
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. if Data is not empty when Load() is called then
	// the file is not read again
	Data []byte

	// the format of the image. decided by Load()
	Format Format

	// the PRG data. slice of Data
	PRG []byte

	// cartridge configuration. raw images are always mapper 0 with 8KB of PRG
	// RAM
	Mapper     uint8
	Trainer    bool
	Battery    bool
	CHRSize    int
	PRGRAMSize int

	// the address pointed to by the reset vector in the PRG data
	ResetVector uint16
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

func extension(filename string) string {
	return path.Ext(filename)
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.PRG) > 0
}

// Load the image data and check that it is usable. Loader filenames with a
// valid scheme will use that method to load the data. Currently supported
// schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		if err := cl.read(); err != nil {
			return err
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash

	if err := cl.parse(); err != nil {
		cl.PRG = nil
		return err
	}

	logger.Logf(logger.Allow, "cartridge", "loaded %s: %s image, %dKB PRG, mapper %d, reset %#04x",
		cl.ShortName(), cl.Format, len(cl.PRG)/1024, cl.Mapper, cl.ResetVector)

	return nil
}

func (cl *Loader) read() error {
	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	return nil
}

func (cl *Loader) parse() error {
	switch {
	case isINES(cl.Data):
		cl.Format = FormatINES
		if err := cl.parseINES(); err != nil {
			return err
		}
	case expectedFormat(cl.Filename) == FormatINES:
		return curated.Errorf(ImageError, "missing iNES magic")
	default:
		cl.Format = FormatRaw
		cl.Mapper = 0
		cl.PRGRAMSize = 0x2000
		cl.PRG = cl.Data
	}

	if len(cl.PRG) < MinImageSize {
		return curated.Errorf(ImageError, fmt.Sprintf("image is too small (%d bytes)", len(cl.PRG)))
	}

	if cl.Format == FormatRaw && len(cl.PRG) != RawSize16K && len(cl.PRG) != RawSize32K {
		return curated.Errorf(ImageError, fmt.Sprintf("unsupported raw image size (%d bytes)", len(cl.PRG)))
	}

	if cl.Mapper != 0 {
		return curated.Errorf(ImageError, fmt.Sprintf("unsupported mapper (%d)", cl.Mapper))
	}

	// the reset vector is in the last bank of the PRG data
	idx := len(cl.PRG) - int(memorymap.Memtop-cpubus.Reset) - 1
	cl.ResetVector = uint16(cl.PRG[idx]) | uint16(cl.PRG[idx+1])<<8
	if cl.ResetVector < memorymap.OriginPRGROM {
		return curated.Errorf(ImageError, fmt.Sprintf("reset vector (%#04x) is outside the cartridge ROM", cl.ResetVector))
	}

	return nil
}
