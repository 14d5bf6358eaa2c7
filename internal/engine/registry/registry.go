// Released under an MIT license. See LICENSE.

// Package registry maps program names to the single live instance of each.
package registry

import (
	"github.com/michaelmacinnis/logos/internal/engine/program"
)

// T (registry) owns every program created during a session.
// Programs are never removed.
type T struct {
	byName map[string]*program.T
	order  []string
}

// New creates an empty registry.
func New() *T {
	return &T{byName: map[string]*program.T{}}
}

// Get returns the program called name, if there is one.
func (r *T) Get(name string) (*program.T, bool) {
	p, ok := r.byName[name]

	return p, ok
}

// Lookup is Get. It satisfies program.Directory.
func (r *T) Lookup(name string) (*program.T, bool) {
	return r.Get(name)
}

// Note returns the program called name, creating a note if necessary.
func (r *T) Note(name string) *program.T {
	p, _ := r.Register(program.NewNote(name))

	return p
}

// Register adds p unless a program with the same name exists.
// It returns the live instance and whether p was added.
func (r *T) Register(p *program.T) (*program.T, bool) {
	if existing, ok := r.byName[p.Name]; ok {
		return existing, false
	}

	r.byName[p.Name] = p
	r.order = append(r.order, p.Name)

	return p, true
}

// Names returns program names in the order they were created.
func (r *T) Names() []string {
	return append([]string(nil), r.order...)
}
