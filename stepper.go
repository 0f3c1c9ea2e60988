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
	"fmt"
	"io"

	"github.com/gofami/gofami/curated"
	"github.com/gofami/gofami/disassembly"
	"github.com/gofami/gofami/easyterm"
	"github.com/gofami/gofami/hardware"
	"github.com/gofami/gofami/logger"
)

const stepHelp = `STEP mode executes one instruction for every key press.

  space/return  execute next instruction
  b             step back one instruction
  n             show next instruction
  r             show CPU registers
  l             show recent log entries
  q             quit`

type keyReader interface {
	ReadKey() (byte, error)
	Close() error
}

// lineReader is used when stdin is not a terminal. every byte in the input is
// treated as a key press.
type lineReader struct {
	r *bufio.Reader
}

func (lr *lineReader) ReadKey() (byte, error) {
	return lr.r.ReadByte()
}

func (lr *lineReader) Close() error {
	return nil
}

// openKeyReader returns a key reader for the controlling terminal. if the
// program is not running interactively then keys are read from the supplied
// io.Reader instead.
func openKeyReader(r io.Reader) (keyReader, error) {
	et, err := easyterm.Open()
	if err != nil {
		if curated.Is(err, easyterm.NotInteractive) {
			return &lineReader{r: bufio.NewReader(r)}, nil
		}
		return nil, err
	}
	return et, nil
}

// stepLoop reads keys from input until the quit key is pressed or until the
// input is exhausted. an instruction that fails is reported but does not end
// the loop.
func stepLoop(m *hardware.Machine, input keyReader, output io.Writer) error {
	showNext(m, output)

	for {
		key, err := input.ReadKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch key {
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, 's':
			if err := m.Step(); err != nil {
				fmt.Fprintf(output, "* %v\r\n", err)
				continue
			}
			e := disassembly.FormatResult(m.CPU.LastResult, disassembly.EntryLevelExecuted)
			fmt.Fprintf(output, "%s  [%s]\r\n", e, e.Cycles())

		case 'b':
			if err := m.StepBack(); err != nil {
				fmt.Fprintf(output, "* %v\r\n", err)
				continue
			}
			fmt.Fprintf(output, "stepped back to %#04x (%d remaining)\r\n", m.CPU.PC.Address(), m.HistoryLength())

		case 'n':
			showNext(m, output)

		case 'r':
			fmt.Fprintf(output, "%s\r\n", m.CPU.Snapshot())

		case 'l':
			logger.Tail(output, 10)

		case 'h', '?':
			fmt.Fprintf(output, "%s\r\n", stepHelp)

		case 'q', easyterm.KeyEOT, easyterm.KeyEsc:
			return nil

		case easyterm.KeyLineFeed:
			// ignored. line feeds are present when input is not a terminal

		default:
			fmt.Fprintf(output, "unrecognised key (%q). press h for help\r\n", key)
		}
	}
}

func showNext(m *hardware.Machine, output io.Writer) {
	e, err := disassembly.Decode(m.Mem, m.CPU.PC.Address())
	if err != nil {
		fmt.Fprintf(output, "* %v\r\n", err)
		return
	}
	fmt.Fprintf(output, "next: %s\r\n", e)
}

// assert that the real terminal satisfies the keyReader interface.
var _ keyReader = (*easyterm.EasyTerm)(nil)
