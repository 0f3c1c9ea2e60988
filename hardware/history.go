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

package hardware

import (
	"github.com/gofami/gofami/curated"
)

// history is a ring of the most recent machine states.
type history struct {
	entries []*State
	start   int
	count   int
}

func newHistory(size int) *history {
	return &history{
		entries: make([]*State, size),
	}
}

func (h *history) clear() {
	for i := range h.entries {
		h.entries[i] = nil
	}
	h.start = 0
	h.count = 0
}

func (h *history) push(s *State) {
	idx := (h.start + h.count) % len(h.entries)
	h.entries[idx] = s
	if h.count < len(h.entries) {
		h.count++
	} else {
		h.start = (h.start + 1) % len(h.entries)
	}
}

func (h *history) pop() *State {
	if h.count == 0 {
		return nil
	}
	h.count--
	idx := (h.start + h.count) % len(h.entries)
	s := h.entries[idx]
	h.entries[idx] = nil
	return s
}

// RecordHistory sets the number of previous states that are kept. A size of
// zero stops recording and discards any existing history.
func (m *Machine) RecordHistory(size int) {
	if size <= 0 {
		m.history = nil
		return
	}
	m.history = newHistory(size)
}

// HistoryLength returns the number of states available to StepBack().
func (m *Machine) HistoryLength() int {
	if m.history == nil {
		return 0
	}
	return m.history.count
}

// StepBack restores the machine to the state it was in before the most recent
// instruction.
func (m *Machine) StepBack() error {
	if m.history == nil {
		return curated.Errorf("machine: history is not being recorded")
	}

	s := m.history.pop()
	if s == nil {
		return curated.Errorf("machine: no more history")
	}

	return m.Plumb(s)
}
