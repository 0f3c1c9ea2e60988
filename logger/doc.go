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

// Package logger is the central log for the emulation. Log entries are
// grouped by a tag, usually the name of the component making the entry, and
// are kept in a ring of limited size.
//
//	logger.Logf(logger.Allow, "CPU", "illegal opcode (%#02x)", opcode)
//
// Repeated entries are collapsed into a single entry with a repeat count.
//
// Whether an entry is made or not is decided by the Permission argument.
// Allow is the Permission to use when the entry should always be made.
//
// The log can be echoed to an io.Writer as the entries are made with
// SetEcho().
package logger
