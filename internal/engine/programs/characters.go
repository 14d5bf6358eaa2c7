// Released under an MIT license. See LICENSE.

package programs

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

// Characters converts between text and codepoints.
func Characters() program.Table {
	return program.Table{
		"Unicode": program.Pure(func(_, b string) (string, error) {
			var s strings.Builder

			for _, f := range strings.Fields(b) {
				r, err := codepoint(f)
				if err != nil {
					return "", err
				}

				s.WriteRune(r)
			}

			return s.String(), nil
		}),
		"codepoints": program.Pure(func(_, b string) (string, error) {
			cs := make([]string, 0, len(b))
			for _, r := range b {
				cs = append(cs, strconv.Itoa(int(r)))
			}

			return strings.Join(cs, " "), nil
		}),
	}
}

// codepoint parses a number, dropping any fractional part.
func codepoint(s string) (rune, error) {
	d, _, err := apd.NewFromString(s)
	if err == nil {
		var integer, fraction apd.Decimal

		d.Modf(&integer, &fraction)

		var n int64

		n, err = integer.Int64()
		if err == nil && n >= 0 && n <= utf8.MaxRune && utf8.ValidRune(rune(n)) {
			return rune(n), nil
		}
	}

	return 0, errors.New(errors.ArgumentError, "%q is not a codepoint", s)
}
