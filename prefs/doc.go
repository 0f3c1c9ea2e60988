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

// Package prefs handles preference values and their persistence to disk.
//
// Preference values are instances of Bool, Int or String. A value can be
// added to a Disk instance under a key and the Disk saved and loaded as
// required:
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath(prefs.DefaultPrefsFile))
//	var randState prefs.Bool
//	dsk.Add("hardware.randstate", &randState)
//	err = dsk.Load(true)
//
// The file format is a warning line followed by one line per value, sorted by
// key:
//
//	hardware.randstate :: true
//
// Entries in the file that are not known to the Disk instance are preserved
// when the Disk is saved. This means that more than one Disk can share the
// same file.
//
// Values can also be set from the command line. See PushCommandLineStack().
package prefs
