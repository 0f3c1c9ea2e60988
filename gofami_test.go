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

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofami/gofami/cartridgeloader"
	"github.com/gofami/gofami/hardware"
	"github.com/gofami/gofami/test"
)

// program is LDA #$2b; LDA $10; JMP $8004
var program = []uint8{0xa9, 0x2b, 0xa5, 0x10, 0x4c, 0x04, 0x80}

func image() []uint8 {
	prg := make([]uint8, 0x4000)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	return prg
}

func newTestMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.AttachCartridge(cartridgeloader.Loader{
		Filename: "test.bin",
		Data:     image(),
	}))
	return m
}

func keys(s string) keyReader {
	return &lineReader{r: bufio.NewReader(strings.NewReader(s))}
}

func TestStepLoop(t *testing.T) {
	m := newTestMachine(t)
	m.RecordHistory(10)

	w := &test.Writer{}
	test.DemandSuccess(t, stepLoop(m, keys("  \n"), w))
	test.Equate(t, m.Instructions, 2)
	test.Equate(t, m.CPU.A.Value(), 0x00)
	test.ExpectSuccess(t, strings.Contains(w.String(), "next: $8000  a9 2b     LDA #$2b"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "LDA $10"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "[3]"))

	w.Clear()
	test.DemandSuccess(t, stepLoop(m, keys("bq "), w))
	test.Equate(t, m.Instructions, 1)
	test.Equate(t, m.CPU.PC.Address(), 0x8002)
	test.ExpectSuccess(t, strings.Contains(w.String(), "stepped back to 0x8002"))
}

func TestStepLoopErrors(t *testing.T) {
	m := newTestMachine(t)

	// no history has been recorded so stepping back fails without ending the
	// loop
	w := &test.Writer{}
	test.DemandSuccess(t, stepLoop(m, keys("bxr"), w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "* "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unrecognised key ('x')"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=0x8000"))
	test.Equate(t, m.Instructions, 0)
}

func TestLaunchDisasm(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(filename, image(), 0o644))

	test.Equate(t, launch([]string{"DISASM", filename}), 0)
	test.Equate(t, launch([]string{"DISASM", "-grep", "jmp", filename}), 0)
	test.Equate(t, launch([]string{"DISASM", "-origin", "0x1000", filename}), 20)
}

func TestLaunchMissingImage(t *testing.T) {
	test.Equate(t, launch([]string{"DISASM"}), 20)
	test.Equate(t, launch([]string{"DISASM", "missing.bin"}), 20)
	test.Equate(t, launch([]string{"DISASM", "a.bin", "b.bin"}), 20)
}

func TestLaunchVersion(t *testing.T) {
	test.Equate(t, launch([]string{"VERSION"}), 0)
}
