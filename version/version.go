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

// Package version reports the version of the program. The number is set at
// link time with:
//
//	-ldflags "-X github.com/gofami/gofami/version.number=v0.1.0"
//
// Revision information is taken from the build information embedded by the
// go tool.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Gofami"

// set by the linker. empty if the program was built without the -X flag
var number string

// Version returns the version string and the vcs revision. The version string
// is "unreleased" if the number was not set by the linker but vcs information
// is present, and "local" if there is neither.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, nil), "no revision information"
	}
	return versionString(number, info.Settings), revisionString(info.Settings)
}

func versionString(number string, settings []debug.BuildSetting) string {
	if number != "" {
		return number
	}
	for _, s := range settings {
		if s.Key == "vcs" {
			return "unreleased"
		}
	}
	return "local"
}

func revisionString(settings []debug.BuildSetting) string {
	var revision string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return "no revision information"
	}
	if modified {
		return fmt.Sprintf("%s+dirty", revision)
	}
	return revision
}

// String returns the application name and version on one line.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
