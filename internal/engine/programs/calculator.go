// Released under an MIT license. See LICENSE.

package programs

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

//nolint:gochecknoglobals
var (
	arithmetic = apd.BaseContext.WithPrecision(34)
	number     = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// Calculator evaluates arithmetic. "=" evaluates the buffer; each operator
// appends itself and its argument to the buffer and evaluates the result.
func Calculator() program.Table {
	t := program.Table{
		"=": program.Pure(func(a, b string) (string, error) {
			if a != "" {
				return "", errors.New(errors.ArgumentError, "= takes no argument")
			}

			return Calculate(b)
		}),
	}

	for _, op := range "*/+-^" {
		op := string(op)
		t[op] = program.Pure(func(a, b string) (string, error) {
			return Calculate(b + op + a)
		})
	}

	return t
}

// Calculate evaluates the expression s and formats the result without
// trailing zeros.
func Calculate(s string) (string, error) {
	c := &calculation{text: s}

	d, err := c.sum()
	if err == nil {
		c.space()

		if c.pos < len(c.text) {
			err = c.expected("an operator")
		}
	}

	if err != nil {
		return "", errors.Wrap(errors.ArgumentError, err, "cannot calculate %q", s)
	}

	d.Reduce(d)

	return d.Text('f'), nil
}

// calculation is a recursive descent evaluator. Operators of equal
// precedence associate to the left, exponentiation included.
type calculation struct {
	text string
	pos  int
}

func (c *calculation) sum() (*apd.Decimal, error) {
	return c.binary(c.product, "+-")
}

func (c *calculation) product() (*apd.Decimal, error) {
	return c.binary(c.power, "*/")
}

func (c *calculation) power() (*apd.Decimal, error) {
	return c.binary(c.operand, "^")
}

func (c *calculation) binary(next func() (*apd.Decimal, error), ops string) (*apd.Decimal, error) {
	x, err := next()
	if err != nil {
		return nil, err
	}

	for {
		c.space()

		if c.pos >= len(c.text) || !strings.ContainsRune(ops, rune(c.text[c.pos])) {
			return x, nil
		}

		op := c.text[c.pos]
		c.pos++

		y, err := next()
		if err != nil {
			return nil, err
		}

		err = apply(op, x, y)
		if err != nil {
			return nil, err
		}
	}
}

func (c *calculation) operand() (*apd.Decimal, error) {
	c.space()

	if c.pos < len(c.text) && c.text[c.pos] == '(' {
		c.pos++

		d, err := c.sum()
		if err != nil {
			return nil, err
		}

		c.space()

		if c.pos >= len(c.text) || c.text[c.pos] != ')' {
			return nil, c.expected(`")"`)
		}

		c.pos++

		return d, nil
	}

	m := number.FindString(c.text[c.pos:])
	if m == "" {
		return nil, c.expected("a number")
	}

	c.pos += len(m)

	d, _, err := apd.NewFromString(strings.TrimPrefix(m, "+"))

	return d, err
}

func (c *calculation) expected(what string) error {
	if c.pos >= len(c.text) {
		return errors.New(errors.ArgumentError, "expected %s at end of input", what)
	}

	return errors.New(errors.ArgumentError, "expected %s at %q", what, c.text[c.pos:])
}

func (c *calculation) space() {
	for c.pos < len(c.text) && strings.ContainsRune(" \t\r\n", rune(c.text[c.pos])) {
		c.pos++
	}
}

// apply stores x op y in x.
func apply(op byte, x, y *apd.Decimal) (err error) {
	switch op {
	case '+':
		_, err = arithmetic.Add(x, x, y)
	case '-':
		_, err = arithmetic.Sub(x, x, y)
	case '*':
		_, err = arithmetic.Mul(x, x, y)
	case '/':
		_, err = arithmetic.Quo(x, x, y)
	case '^':
		_, err = arithmetic.Pow(x, x, y)
	}

	return err
}
