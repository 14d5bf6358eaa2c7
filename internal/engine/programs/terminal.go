// Released under an MIT license. See LICENSE.

package programs

import (
	"context"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/michaelmacinnis/logos/internal/reader/line"
)

// Terminal provides run, which replaces every instruction still queued with
// the contents of the buffer. The buffer is emptied.
func Terminal() program.Table {
	return program.Table{
		"run": run,
	}
}

func run(_ context.Context, r *program.Request) (*program.Result, error) {
	if r.Argument != "" {
		return nil, errors.New(errors.ArgumentError, "run takes no argument")
	}

	return &program.Result{
		Buffer:    "",
		Remainder: line.Lines(r.Buffer),
		Replace:   true,
	}, nil
}
