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

// Package cartridgeloader is used to specify the program image that is to be
// attached to the emulated machine.
//
// When the image is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// Two image formats are understood. iNES images are identified by the magic
// bytes at the start of the file. Any other file is treated as a raw PRG image
// of either 16KB or 32KB. In both cases the reset vector must point into the
// cartridge ROM window, otherwise the image is rejected with an ImageError.
//
// It is preferred that the NewLoader() function is used to create a Loader:
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//	err := cl.Load()
//
// After a successful Load() the PRG field contains the program data ready for
// attachment to a mapper.
package cartridgeloader
