// Released under an MIT license. See LICENSE.

package programs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

// Email is the interpreter's terminal I/O: send prints the buffer and
// refresh replaces it with a line of input.
func Email(input func(string) (string, error), output io.Writer) program.Table {
	return program.Table{
		"refresh": program.Pure(func(a, _ string) (string, error) {
			if a != "" {
				return "", errors.New(errors.ArgumentError, "refresh takes no argument")
			}

			s, err := input("Program requests input: ")
			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "refresh")
			}

			return s, nil
		}),
		"send": program.Pure(func(a, b string) (string, error) {
			if a != "" {
				return "", errors.New(errors.ArgumentError, "send takes no argument")
			}

			_, err := fmt.Fprintln(output, b)
			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "send")
			}

			return b, nil
		}),
	}
}

// LineReader returns an input function that writes the prompt to w and
// reads a line from r.
func LineReader(r io.Reader, w io.Writer) func(string) (string, error) {
	br := bufio.NewReader(r)

	return func(prompt string) (string, error) {
		if w != nil {
			fmt.Fprint(w, prompt)
		}

		s, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || s == "") { //nolint:errorlint
			return "", err
		}

		return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r"), nil
	}
}
