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

// Package easyterm prepares the controlling terminal for single key input. It
// is used by the STEP mode of the gofami command so that the user does not
// need to press return after every key.
//
// The terminal is placed into cbreak mode with the help of the
// github.com/pkg/term package. Detection of whether stdin is a terminal is
// provided by golang.org/x/term.
//
// Single key input is not available under windows.
package easyterm
