// Released under an MIT license. See LICENSE.

package programs

import (
	"context"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/assembler"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

// Assembler provides compile, which turns the declarations in the buffer
// into a new program.
func Assembler() program.Table {
	return program.Table{
		"compile": compile,
	}
}

func compile(_ context.Context, r *program.Request) (*program.Result, error) {
	fields := strings.Fields(r.Argument)
	if len(fields) != 1 {
		return nil, errors.New(errors.ArgumentError,
			"compile needs a single program name, not %q", r.Argument)
	}

	p, err := assembler.Compile(fields[0], r.Buffer, r.Programs)
	if err != nil {
		return nil, err
	}

	return &program.Result{
		Buffer: r.Buffer,
		Effect: &program.Effect{Op: program.Define, Name: p.Name, Program: p},
	}, nil
}
