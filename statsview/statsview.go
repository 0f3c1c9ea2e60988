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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gofami/gofami/logger"
)

// the server is started at most once per process
var once sync.Once

// Launch the stats server in a new goroutine. Calling Launch() more than once
// has no further effect.
func Launch(output io.Writer) {
	once.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "server on %s", Address)
		fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
	})
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
