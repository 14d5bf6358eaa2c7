// Released under an MIT license. See LICENSE.

package programs

import (
	"context"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/rivo/uniseg"
)

// Units an editor command can count in. Characters are grapheme clusters.
const (
	characters = "characters"
	words      = "words"
	lines      = "lines"
)

// Editor provides text editing commands.
func Editor() program.Table {
	return program.Table{
		"append":    appendClipboard,
		"backspace": program.Pure(backspace),
		"count":     program.Pure(count),
		"replace":   program.Pure(replace),
		"tailor":    program.Pure(tailor),
		"write":     program.Pure(write),
	}
}

// Literal returns the text denoted by s: a double-quoted string, a
// $'...' string with escapes, or a name for a newline or quotemark.
func Literal(s string) (string, bool) {
	s = strings.TrimSpace(s)

	switch s {
	case `"`, "quotemark", "a quotemark", "Otto von Quotemark":
		return `"`, true
	case "newline", "a newline":
		return "\n", true
	}

	if len(s) >= 3 && strings.HasPrefix(s, "$'") && strings.HasSuffix(s, "'") {
		v, err := adapted.ActualBytes(s[2 : len(s)-1])
		if err != nil {
			return "", false
		}

		return v, true
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1], true
	}

	return "", false
}

func appendClipboard(_ context.Context, r *program.Request) (*program.Result, error) {
	switch r.Argument {
	case "the clipboard", "from clipboard":
		return &program.Result{Buffer: r.Buffer + r.Clipboard}, nil
	}

	return nil, errors.New(errors.ArgumentError,
		"append takes \"the clipboard\" or \"from clipboard\", not %q", r.Argument)
}

func backspace(a, b string) (string, error) {
	n, unit, err := quantity("backspace", a)
	if err != nil {
		return "", err
	}

	if unit == characters {
		g := graphemes(b)
		if n > len(g) {
			n = len(g)
		}

		return strings.Join(g[:len(g)-n], ""), nil
	}

	delimiter := delimiters(unit)

	for ; n > 0 && b != ""; n-- {
		b = strings.TrimRightFunc(b, func(r rune) bool { return !delimiter(r) })
		if b != "" {
			b = b[:len(b)-1]
		}
	}

	return b, nil
}

func count(a, b string) (string, error) {
	if a == "" {
		a = characters
	}

	switch a {
	case characters:
		return strconv.Itoa(uniseg.GraphemeClusterCount(b)), nil
	case words, lines:
		return strconv.Itoa(len(strings.FieldsFunc(b, delimiters(a)))), nil
	}

	s, ok := Literal(a)
	if !ok {
		return "", errors.New(errors.ParseError, "count takes a unit or quoted text, not %q", a)
	}

	if s == "" {
		return "", errors.New(errors.ArgumentError, "count needs non-empty text")
	}

	return strconv.Itoa(strings.Count(b, s)), nil
}

func replace(a, b string) (string, error) {
	const sep = " with "

	// The separator may also occur inside either literal. Try each split
	// in turn until both sides are literals.
	parts := strings.Split(a, sep)
	for i := 1; i < len(parts); i++ {
		old, ok := Literal(strings.Join(parts[:i], sep))
		if !ok {
			continue
		}

		replacement, ok := Literal(strings.Join(parts[i:], sep))
		if !ok {
			continue
		}

		if old == "" {
			return "", errors.New(errors.ArgumentError, "nothing to replace")
		}

		return strings.ReplaceAll(b, old, replacement), nil
	}

	return "", errors.New(errors.ParseError, "%q can't be parsed as a replacement", a)
}

func tailor(a, b string) (string, error) {
	n, unit, err := quantity("tailor", a)
	if err != nil {
		return "", err
	}

	if unit == characters {
		g := graphemes(b)
		if n > len(g) {
			n = len(g)
		}

		return strings.Join(g[len(g)-n:], ""), nil
	}

	delimiter := delimiters(unit)
	isDelimiter := func(i int) bool { return delimiter(rune(b[i-1])) }

	i := len(b)
	for ; n > 0 && i > 0; n-- {
		for i > 0 && isDelimiter(i) {
			i--
		}

		for i > 0 && !isDelimiter(i) {
			i--
		}
	}

	return strings.TrimLeftFunc(b[i:], delimiter), nil
}

func write(a, b string) (string, error) {
	if strings.TrimSpace(a) == "" {
		return b + "\n", nil
	}

	s, ok := Literal(a)
	if !ok {
		return "", errors.New(errors.ParseError, "write takes quoted text, not %q", a)
	}

	return b + s, nil
}

// delimiters returns a predicate for the characters that separate units.
func delimiters(unit string) func(rune) bool {
	if unit == lines {
		return func(r rune) bool { return r == '\n' }
	}

	return func(r rune) bool { return r == ' ' || r == '\n' }
}

func graphemes(s string) []string {
	var g []string

	state := -1
	for s != "" {
		var cluster string

		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		g = append(g, cluster)
	}

	return g
}

// quantity parses "[n] [unit]". Both parts are optional.
func quantity(c, a string) (int, string, error) {
	fields := strings.Fields(a)

	unit := func(s string) bool {
		return s == characters || s == words || s == lines
	}

	switch len(fields) {
	case 0:
		return 1, characters, nil
	case 1:
		if unit(fields[0]) {
			return 1, fields[0], nil
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			break
		}

		return n, characters, nil
	case 2:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 || !unit(fields[1]) {
			break
		}

		return n, fields[1], nil
	}

	return 0, "", errors.New(errors.ArgumentError,
		"%s takes [count] [characters|words|lines], not %q", c, a)
}
