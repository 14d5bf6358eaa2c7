// Released under an MIT license. See LICENSE.

package engine

import (
	"context"

	"github.com/michaelmacinnis/logos/internal/engine/assembler"
	"github.com/michaelmacinnis/logos/internal/engine/keyword"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/michaelmacinnis/logos/internal/reader/line"
)

// instruction dispatches text and records where it failed.
// Nested instructions are numbered 0.
func (e *T) instruction(ctx context.Context, text string, step int) error {
	target := e.Target()
	c, a := line.Split(text)

	e.log.Debug("dispatch", "step", step, "target", target, "command", c)

	err := e.dispatch(ctx, c, a)
	if err != nil {
		return &errors.Line{
			Step:    step,
			Program: target,
			Text:    text,
			Command: c,
			Err:     err,
		}
	}

	return nil
}

// dispatch applies, in order: reserved keywords, the active program's
// commands, and, on the desktop, opening the program named c.
func (e *T) dispatch(ctx context.Context, c, a string) error {
	if c == "" {
		return errors.New(errors.ParseError, "missing command")
	}

	if keyword.Is(c) {
		return e.reserved(ctx, c, a)
	}

	p := e.active
	if p == nil {
		return e.open(c, a)
	}

	if !p.Has(c) {
		return errors.UnknownCommand(p.Name, c)
	}

	switch p.Kind() {
	case program.Builtin:
		return e.builtin(ctx, p, c, a)
	case program.User:
		return e.invoke(ctx, p, c, a)
	case program.Note:
	}

	return errors.UnknownCommand(p.Name, c)
}

// activate makes name the active target, creating a note if necessary.
func (e *T) activate(name string) error {
	if e.owner != "" && !assembler.Allowed(e.owner, name, e.registry) {
		return errors.New(errors.DefinitionError,
			"a command of %s may not switch to %s", e.owner, name)
	}

	if name == keyword.Desktop {
		e.active = nil
		return nil
	}

	e.active = e.registry.Note(name)

	return nil
}

func (e *T) apply(x *program.Effect) error {
	switch x.Op {
	case program.Open:
		return e.activate(x.Name)

	case program.Close:
		if e.active != nil && e.active.Name == x.Name {
			e.active = nil
		}

	case program.Define:
		if e.owner != "" {
			return errors.New(errors.DefinitionError,
				"a command of %s may not define programs", e.owner)
		}

		if _, added := e.registry.Register(x.Program); !added {
			return errors.New(errors.DefinitionError,
				"program %s already exists", x.Program.Name)
		}

		e.log.Info("defined program",
			"program", x.Program.Name,
			"kind", x.Program.Kind(),
			"commands", x.Program.Commands())
	}

	return nil
}

func (e *T) builtin(ctx context.Context, p *program.T, c, a string) error {
	r, err := p.Provider().Handle(ctx, &program.Request{
		Command:   c,
		Argument:  a,
		Buffer:    p.Buffer,
		Clipboard: e.clipboard.Get(),
		Programs:  e.registry,
	})
	if err != nil {
		if errors.KindOf(err) == errors.Unknown && errors.Is(err, errors.ErrUnknownCommand) {
			return errors.UnknownCommand(p.Name, c)
		}

		return err
	}

	p.Buffer = r.Buffer

	if r.Clipboard != nil {
		e.clipboard.Set(*r.Clipboard)
	}

	if r.Replace {
		if e.owner != "" {
			return errors.New(errors.DefinitionError,
				"a command of %s may not replace the instruction stream", e.owner)
		}

		e.log.Debug("replaced instructions",
			"program", p.Name,
			"discarded", e.source.Len(),
			"queued", len(r.Remainder))
		e.source.Replace(r.Remainder)
	}

	if r.Effect != nil {
		return e.apply(r.Effect)
	}

	return nil
}

// invoke runs the body of the user command c against p's buffer.
// The clipboard is restored and p made active again when the body ends.
func (e *T) invoke(ctx context.Context, p *program.T, c, a string) error {
	if a != "" {
		return errors.New(errors.ArgumentError, "%s %s takes no argument", p.Name, c)
	}

	body, _ := p.Body(c)

	if e.depth >= e.limit {
		return errors.New(errors.LimitError, "commands nested more than %d deep", e.limit)
	}

	saved, owner := e.clipboard.Get(), e.owner

	e.depth++
	e.owner = p.Name

	defer func() {
		e.depth--
		e.owner = owner
		e.clipboard.Set(saved)
		e.active = p
	}()

	for _, l := range body {
		err := ctx.Err()
		if err != nil {
			return errors.Wrap(errors.Interrupted, err, "%s %s interrupted", p.Name, c)
		}

		err = e.instruction(ctx, l, 0)
		if err != nil {
			return err
		}
	}

	return nil
}

// open implements the desktop's response to any command that is not
// reserved. A non-empty argument becomes the opened program's buffer.
func (e *T) open(name, argument string) error {
	err := e.activate(name)
	if err != nil {
		return err
	}

	if argument != "" && e.active != nil {
		e.active.Buffer = argument
	}

	return nil
}
