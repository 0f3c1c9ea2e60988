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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a word on the command line that selects a
// different way of running the program, each with its own set of flags. The
// gofami command has the modes RUN, STEP and DISASM for example.
//
// Arguments are given to NewArgs() and then consumed by successive calls to
// Parse(). Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//	logging := md.AddBool("log", false, "echo log to stdout")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the Mode() function returns the selected mode. The first
// sub-mode given to AddSubModes() is the default and is selected if the
// argument following the flags is not a sub-mode. Mode comparison is case
// insensitive.
//
// Flags for the selected mode are then added after a call to NewMode() and
// parsed with another call to Parse(). Arguments that are neither flags nor
// modes are available through RemainingArgs() and GetArg().
//
// A help flag (-help or -h) prints the flags and sub-modes to the Output
// writer.
package modalflag
