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

import "strings"

// Format of the program image.
type Format int

// List of valid Format values.
const (
	FormatUnknown Format = iota
	FormatINES
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatINES:
		return "iNES"
	case FormatRaw:
		return "raw"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES", ".BIN", ".ROM", ".PRG"}

// IsRecognised returns true if the filename has one of the extensions listed
// in FileExtensions. Alphabetic characters in the extension can be in upper
// or lower case.
func IsRecognised(filename string) bool {
	ext := strings.ToUpper(extension(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// expectedFormat returns the format implied by the filename extension.
func expectedFormat(filename string) Format {
	switch strings.ToUpper(extension(filename)) {
	case ".NES":
		return FormatINES
	case ".BIN", ".ROM", ".PRG":
		return FormatRaw
	}
	return FormatUnknown
}
