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

// Package paths resolves the location of resources used by the emulator, such
// as the preferences file.
//
// If a directory named ".gofami" exists in the current working directory then
// that is used as the base path. Otherwise the base path is the "gofami"
// directory in the user's configuration directory, as returned by
// os.UserConfigDir().
package paths
