// Released under an MIT license. See LICENSE.

// Package program defines logos programs and the contract their command
// sets implement.
package program

import (
	"sort"
)

// Kind distinguishes the closed set of program variants.
type Kind int

const (
	// Builtin programs delegate commands to a Provider.
	Builtin Kind = iota
	// Note programs have no commands.
	Note
	// User programs replay instruction bodies produced by the Assembler.
	User
)

func (k Kind) String() string {
	switch k {
	case Builtin:
		return "builtin"
	case Note:
		return "note"
	case User:
		return "user"
	}

	return "unknown"
}

// T (program) is a named buffer and the commands that operate on it.
type T struct {
	Name   string
	Buffer string

	kind     Kind
	provider Provider
	bodies   map[string][]string
}

// NewBuiltin creates a program whose commands are handled by p.
func NewBuiltin(name string, p Provider) *T {
	return &T{Name: name, kind: Builtin, provider: p}
}

// NewNote creates a program with no commands.
func NewNote(name string) *T {
	return &T{Name: name, kind: Note}
}

// NewUser creates a program whose commands are the instruction bodies given.
func NewUser(name string, bodies map[string][]string) *T {
	b := make(map[string][]string, len(bodies))
	for k, v := range bodies {
		b[k] = append([]string(nil), v...)
	}

	return &T{Name: name, kind: User, bodies: b}
}

// Kind returns the program's variant.
func (p *T) Kind() Kind {
	return p.kind
}

// Body returns the instructions for the user command c.
func (p *T) Body(c string) ([]string, bool) {
	b, ok := p.bodies[c]

	return b, ok
}

// Commands returns the names of p's commands in alphabetical order.
func (p *T) Commands() []string {
	var names []string

	switch p.kind {
	case Builtin:
		names = p.provider.Commands()
	case User:
		for k := range p.bodies {
			names = append(names, k)
		}
	case Note:
	}

	sort.Strings(names)

	return names
}

// Has returns true if c is in p's command set.
func (p *T) Has(c string) bool {
	switch p.kind {
	case Builtin:
		return p.provider.Has(c)
	case User:
		_, ok := p.bodies[c]
		return ok
	case Note:
	}

	return false
}

// Provider returns the handler for a builtin program, or nil.
func (p *T) Provider() Provider {
	return p.provider
}

// Directory is a read-only view of the programs in a session.
type Directory interface {
	Lookup(name string) (*T, bool)
}
