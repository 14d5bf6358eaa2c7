// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for logos instructions.
//
// The engine owns the session: the clipboard, the program registry, the
// active target and the instructions that remain to be executed.
package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/michaelmacinnis/logos/internal/engine/clipboard"
	"github.com/michaelmacinnis/logos/internal/engine/keyword"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/engine/registry"
	"github.com/michaelmacinnis/logos/internal/engine/source"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/michaelmacinnis/logos/internal/reader/line"
)

// DefaultLimit bounds the nesting of execute and user commands.
const DefaultLimit = 256

// T (engine) is a logos session.
type T struct {
	clipboard *clipboard.T
	registry  *registry.T
	source    *source.T
	log       *slog.Logger

	active *program.T // nil when the desktop is active.
	owner  string     // user program whose body is running, if any.
	depth  int
	limit  int
	step   int
}

// Option configures a T.
type Option func(*T)

// WithLimit sets the maximum nesting of execute and user commands.
func WithLimit(n int) Option {
	return func(e *T) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithLogger sets the logger used to trace dispatch.
func WithLogger(l *slog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// WithPrograms registers programs before any instruction runs.
func WithPrograms(ps ...*program.T) Option {
	return func(e *T) {
		for _, p := range ps {
			e.registry.Register(p)
		}
	}
}

// New creates a session with the desktop active.
func New(opts ...Option) *T {
	e := &T{
		clipboard: clipboard.New(),
		registry:  registry.New(),
		source:    source.New(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		limit:     DefaultLimit,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Buffer returns the active program's buffer, or false on the desktop.
func (e *T) Buffer() (string, bool) {
	if e.active == nil {
		return "", false
	}

	return e.active.Buffer, true
}

// Clipboard returns the clipboard's contents.
func (e *T) Clipboard() string {
	return e.clipboard.Get()
}

// Commands returns the commands of the active program.
func (e *T) Commands() []string {
	if e.active == nil {
		return nil
	}

	return e.active.Commands()
}

// Evaluate queues the instructions in text and runs until none remain.
// Instructions are numbered from 1 within each call. On failure the rest
// of the queue is discarded.
func (e *T) Evaluate(ctx context.Context, text string) error {
	e.step = 0
	e.Load(text)

	err := e.Run(ctx)
	if err != nil {
		e.source.Reset()
	}

	return err
}

// Load queues the instructions in text.
func (e *T) Load(text string) {
	e.source.Append(line.Lines(text)...)
}

// Names returns the names of all programs in the order they were created.
func (e *T) Names() []string {
	return e.registry.Names()
}

// Program returns the program called name, if there is one.
func (e *T) Program(name string) (*program.T, bool) {
	return e.registry.Get(name)
}

// Remaining returns the instructions not yet executed.
func (e *T) Remaining() []string {
	return e.source.Remaining()
}

// Run executes queued instructions until none remain or one fails.
func (e *T) Run(ctx context.Context) error {
	for {
		err := ctx.Err()
		if err != nil {
			return errors.Wrap(errors.Interrupted, err,
				"stopped before instruction %d", e.step+1)
		}

		l, ok := e.source.Next()
		if !ok {
			return nil
		}

		e.step++

		err = e.instruction(ctx, l, e.step)
		if err != nil {
			return err
		}
	}
}

// Target returns the name of the active program or "Desktop".
func (e *T) Target() string {
	if e.active == nil {
		return keyword.Desktop
	}

	return e.active.Name
}
