// Released under an MIT license. See LICENSE.

// Package line splits logos source into instructions and instructions into
// a command and its argument.
package line

import (
	"strings"
	"unicode"
)

// Split returns the command and argument of the instruction s.
//
// The command is everything up to the first space. That space is dropped and
// the rest of s, including any further spaces, is the argument. Quotes are
// not interpreted.
func Split(s string) (command, argument string) {
	command, argument, _ = strings.Cut(s, " ")

	return command, argument
}

// Lines splits text into instructions. Blank lines are discarded.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))

	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if Blank(l) {
			continue
		}

		lines = append(lines, l)
	}

	return lines
}

// Blank returns true if s contains nothing but white space.
func Blank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsSpace(r)
	}) < 0
}

// First returns the first instruction in text and true, or false if text
// contains no instructions.
func First(text string) (string, bool) {
	for {
		l, rest, more := strings.Cut(text, "\n")

		l = strings.TrimSuffix(l, "\r")
		if !Blank(l) {
			return l, true
		}

		if !more {
			return "", false
		}

		text = rest
	}
}
