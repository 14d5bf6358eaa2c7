// Released under an MIT license. See LICENSE.

package program

import (
	"context"
	"sort"

	"github.com/michaelmacinnis/logos/internal/errors"
)

// Provider handles the commands of a builtin program.
type Provider interface {
	// Commands lists the command names the provider handles.
	Commands() []string
	// Has returns true if the provider handles the command c.
	Has(c string) bool
	// Handle runs r.Command. Commands the provider does not declare
	// fail with errors.ErrUnknownCommand.
	Handle(ctx context.Context, r *Request) (*Result, error)
}

// Request is what a provider receives for a single instruction.
type Request struct {
	Command   string
	Argument  string
	Buffer    string
	Clipboard string
	Programs  Directory
}

// Op is a registry change requested by a provider.
type Op int

const (
	// Open makes Name the active program, creating a note if necessary.
	Open Op = iota + 1
	// Close returns to the desktop if Name is active.
	Close
	// Define registers Program.
	Define
)

// Effect is a registry side effect.
type Effect struct {
	Op      Op
	Name    string
	Program *T
}

// Result is the outcome of a provider command.
type Result struct {
	Buffer string

	// Clipboard, if not nil, replaces the clipboard.
	Clipboard *string

	// Effect, if not nil, is applied to the registry after Buffer is stored.
	Effect *Effect

	// If Replace is true, Remainder replaces the instructions still to run.
	Remainder []string
	Replace   bool
}

// Handler is the implementation of one command.
type Handler func(ctx context.Context, r *Request) (*Result, error)

// Pure adapts a function of the argument and buffer into a Handler.
func Pure(f func(argument, buffer string) (string, error)) Handler {
	return func(_ context.Context, r *Request) (*Result, error) {
		b, err := f(r.Argument, r.Buffer)
		if err != nil {
			return nil, err
		}

		return &Result{Buffer: b}, nil
	}
}

// Table is a Provider backed by a map of command names to handlers.
type Table map[string]Handler

// Commands returns the names in t in alphabetical order.
func (t Table) Commands() []string {
	names := make([]string, 0, len(t))
	for k := range t {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Has returns true if t contains c.
func (t Table) Has(c string) bool {
	_, ok := t[c]

	return ok
}

// Handle dispatches r to the handler for r.Command.
func (t Table) Handle(ctx context.Context, r *Request) (*Result, error) {
	h, ok := t[r.Command]
	if !ok {
		return nil, errors.ErrUnknownCommand
	}

	return h(ctx, r)
}
