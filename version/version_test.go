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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/gofami/gofami/test"
)

func TestVersionString(t *testing.T) {
	test.Equate(t, versionString("v0.1.0", nil), "v0.1.0")
	test.Equate(t, versionString("", nil), "local")
	test.Equate(t, versionString("", []debug.BuildSetting{{Key: "vcs", Value: "git"}}), "unreleased")
}

func TestRevisionString(t *testing.T) {
	test.Equate(t, revisionString(nil), "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "false"},
	}
	test.Equate(t, revisionString(settings), "abc123")

	settings[1].Value = "true"
	test.Equate(t, revisionString(settings), "abc123+dirty")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), "Gofami "))
}
