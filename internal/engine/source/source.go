// Released under an MIT license. See LICENSE.

// Package source holds the instructions that remain to be executed.
package source

// T (source) is an ordered sequence of instructions and a cursor.
type T struct {
	lines  []string
	cursor int
}

// New creates a source that will yield lines in order.
func New(lines ...string) *T {
	s := &T{}
	s.Append(lines...)

	return s
}

// Append queues lines after the existing remainder.
func (s *T) Append(lines ...string) {
	s.compact()
	s.lines = append(s.lines, lines...)
}

// Len returns the number of instructions remaining.
func (s *T) Len() int {
	return len(s.lines) - s.cursor
}

// Next returns the next instruction and advances the cursor.
// It returns false when the source is exhausted.
func (s *T) Next() (string, bool) {
	if s.cursor >= len(s.lines) {
		return "", false
	}

	l := s.lines[s.cursor]
	s.cursor++

	return l, true
}

// Remaining returns a copy of the instructions not yet executed.
func (s *T) Remaining() []string {
	return append([]string(nil), s.lines[s.cursor:]...)
}

// Replace discards the remainder and substitutes lines.
func (s *T) Replace(lines []string) {
	s.lines = append([]string(nil), lines...)
	s.cursor = 0
}

// Reset discards the remainder.
func (s *T) Reset() {
	s.lines = nil
	s.cursor = 0
}

func (s *T) compact() {
	if s.cursor == 0 {
		return
	}

	s.lines = append(s.lines[:0], s.lines[s.cursor:]...)
	s.cursor = 0
}
