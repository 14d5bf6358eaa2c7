package programs

import (
	"context"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/engine/registry"
)

func ctx() context.Context {
	return context.Background()
}

func request(command, argument, buffer string) *program.Request {
	return &program.Request{
		Command:  command,
		Argument: argument,
		Buffer:   buffer,
		Programs: registry.New(),
	}
}
