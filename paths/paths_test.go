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

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofami/gofami/test"
)

func TestLocalBasePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0700))

	test.Equate(t, ResourcePath("preferences"), filepath.Join(baseResourcePath, "preferences"))
	test.Equate(t, ResourcePath(), baseResourcePath)
}

func TestConfigBasePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	cfg, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.Equate(t, ResourcePath("a", "b"), filepath.Join(cfg, "gofami", "a", "b"))
}
