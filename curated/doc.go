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

// Package curated builds error values from a pattern and a list of values, in
// the manner of fmt.Errorf(). The pattern is remembered so that an error can
// later be identified without resorting to string comparison of the formatted
// message:
//
//	const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(IllegalOpcode, 0xff, 0x8000)
//
//	if curated.Is(err, IllegalOpcode) {
//		...
//	}
//
// Patterns should be stored as exported string constants by the package that
// creates the error.
//
// Has() is similar to Is() but searches the entire chain. An error is part of
// a chain when it is used as a value in another call to Errorf().
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain are removed. Parts are separated by the sub-string ": ".
// For example, wrapping the error "cpu: illegal opcode" with the pattern "cpu:
// %v" will produce the message "cpu: illegal opcode" and not "cpu: cpu: illegal
// opcode".
package curated
