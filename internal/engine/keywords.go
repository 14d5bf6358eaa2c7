// Released under an MIT license. See LICENSE.

package engine

import (
	"context"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/keyword"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/michaelmacinnis/logos/internal/reader/line"
)

// reserved runs the keyword c. Keywords work whatever the active target.
func (e *T) reserved(ctx context.Context, c, a string) error {
	switch c {
	case keyword.Copy:
		return e.copy(a, false)
	case keyword.Cut:
		return e.copy(a, true)
	case keyword.Execute:
		return e.execute(ctx, a)
	case keyword.Minimise:
		return e.activate(keyword.Desktop)
	case keyword.Name:
		return e.name(a)
	case keyword.Paste:
		return e.paste(a)
	case keyword.Rem:
		return nil
	case keyword.Switch:
		return e.switchTo(a)
	}

	return errors.UnknownCommand(e.Target(), c)
}

// buffered returns the active program for the keyword c.
func (e *T) buffered(c string) (*program.T, error) {
	if e.active == nil {
		return nil, errors.New(errors.TargetError,
			"%s needs an active program; the desktop has no buffer", c)
	}

	return e.active, nil
}

func (e *T) copy(a string, cut bool) error {
	c := keyword.Copy
	if cut {
		c = keyword.Cut
	}

	if a != "" && a != "all" {
		return errors.New(errors.ArgumentError, "%s takes no argument or \"all\", not %q", c, a)
	}

	p, err := e.buffered(c)
	if err != nil {
		return err
	}

	e.clipboard.Set(p.Buffer)

	if cut {
		p.Buffer = ""
	}

	return nil
}

// execute interprets the clipboard, after prefix, as the next instruction.
func (e *T) execute(ctx context.Context, prefix string) error {
	if prefix != "" && !strings.HasSuffix(prefix, " ") {
		prefix += " "
	}

	l, ok := line.First(prefix + e.clipboard.Get())
	if !ok {
		return nil
	}

	if e.depth >= e.limit {
		return errors.New(errors.LimitError, "execute nested more than %d deep", e.limit)
	}

	e.depth++
	defer func() { e.depth-- }()

	return e.instruction(ctx, l, 0)
}

func (e *T) name(a string) error {
	if a != "" {
		return errors.New(errors.ArgumentError,
			"name takes no argument outside an assembler declaration")
	}

	p, err := e.buffered(keyword.Name)
	if err != nil {
		return err
	}

	p.Buffer = p.Name

	return nil
}

func (e *T) paste(a string) error {
	if a != "" {
		return errors.New(errors.ArgumentError, "paste takes no argument, not %q", a)
	}

	p, err := e.buffered(keyword.Paste)
	if err != nil {
		return err
	}

	p.Buffer += e.clipboard.Get()

	return nil
}

func (e *T) switchTo(a string) error {
	if a == "" || strings.ContainsAny(a, " \t") {
		return errors.New(errors.ArgumentError, "switch needs a single program name, not %q", a)
	}

	return e.activate(a)
}
