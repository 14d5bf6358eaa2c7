// Released under an MIT license. See LICENSE.

package programs

import (
	"slices"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Solitaire sorts the lines of its buffer.
func Solitaire() program.Table {
	return program.Table{
		"sort": program.Pure(func(a, b string) (string, error) {
			reverse := false

			switch a {
			case "":
			case "in reverse":
				reverse = true
			default:
				return "", errors.New(errors.ArgumentError,
					"sort takes no argument or \"in reverse\", not %q", a)
			}

			body, newline := strings.CutSuffix(b, "\n")
			if body == "" {
				return b, nil
			}

			ls := strings.Split(body, "\n")

			collate.New(language.Und).SortStrings(ls)

			if reverse {
				slices.Reverse(ls)
			}

			s := strings.Join(ls, "\n")
			if newline {
				s += "\n"
			}

			return s, nil
		}),
	}
}
