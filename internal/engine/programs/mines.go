// Released under an MIT license. See LICENSE.

package programs

import (
	"io"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

const maxBits = 1 << 20

// Mines lays random bits. "generate N" produces N bits; "generate W by H"
// produces H lines of W bits.
func Mines(random io.Reader) program.Table {
	return program.Table{
		"generate": program.Pure(func(a, _ string) (string, error) {
			w, h, err := grid(a)
			if err != nil {
				return "", err
			}

			rows := make([]string, h)
			for i := range rows {
				rows[i], err = bits(random, w)
				if err != nil {
					return "", errors.Wrap(errors.CollaboratorError, err, "generate")
				}
			}

			return strings.Join(rows, "\n"), nil
		}),
	}
}

func bits(random io.Reader, n int) (string, error) {
	buf := make([]byte, (n+7)/8)

	_, err := io.ReadFull(random, buf)
	if err != nil {
		return "", err
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = '0' + (buf[i/8]>>(7-i%8))&1
	}

	return string(b), nil
}

func grid(a string) (w, h int, err error) {
	fields := strings.Fields(a)

	switch {
	case len(fields) == 1:
		w, err = strconv.Atoi(fields[0])
		h = 1
	case len(fields) == 3 && fields[1] == "by":
		w, err = strconv.Atoi(fields[0])
		if err == nil {
			h, err = strconv.Atoi(fields[2])
		}
	default:
		err = strconv.ErrSyntax
	}

	if err != nil || w < 0 || h < 0 || w > maxBits || h > maxBits || (h != 0 && w > maxBits/h) {
		return 0, 0, errors.New(errors.ArgumentError,
			"generate takes a number of bits or \"WIDTH by HEIGHT\", not %q", a)
	}

	if w == 0 {
		h = 0
	}

	return w, h, nil
}
