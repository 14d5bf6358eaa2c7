// Released under an MIT license. See LICENSE.

// Package assembler compiles declared command bodies into user programs.
//
// A declaration block is a sequence of instructions. Each "name CMD" line
// starts the body of the command CMD; every following instruction, up to the
// next marker, belongs to that body. Lines before the first marker may only
// be remarks.
//
// Bodies run against the buffer of the program that owns them. They may not
// reach any other program, except notes whose names start with the owner's
// name. Those serve as private scratch space.
package assembler

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/logos/internal/engine/keyword"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"github.com/michaelmacinnis/logos/internal/reader/line"
)

// Compile builds the user program owner from the declarations in text.
func Compile(owner, text string, dir program.Directory) (*program.T, error) {
	err := checkOwner(owner, dir)
	if err != nil {
		return nil, err
	}

	bodies := map[string][]string{}
	order := []string{}
	current := ""

	for _, l := range line.Lines(text) {
		c, a := line.Split(l)
		if c == keyword.Name && a != "" {
			err = checkCommand(a, bodies)
			if err != nil {
				return nil, err
			}

			current = a
			bodies[a] = nil
			order = append(order, a)

			continue
		}

		if current == "" {
			if c == keyword.Rem {
				continue
			}

			return nil, errors.New(errors.DefinitionError,
				"%q precedes the first name marker", l)
		}

		bodies[current] = append(bodies[current], l)
	}

	if len(order) == 0 {
		return nil, errors.New(errors.DefinitionError, "%s declares no commands", owner)
	}

	for _, c := range order {
		if len(bodies[c]) == 0 {
			return nil, errors.New(errors.DefinitionError, "%s %s: empty body", owner, c)
		}

		err = check(owner, c, bodies, dir)
		if err != nil {
			return nil, err
		}
	}

	return program.NewUser(owner, bodies), nil
}

// Allowed returns true if a body owned by owner may make target active.
func Allowed(owner, target string, dir program.Directory) bool {
	if target == owner || target == keyword.Desktop {
		return true
	}

	if !strings.HasPrefix(target, owner) {
		return false
	}

	p, ok := dir.Lookup(target)

	return !ok || p.Kind() == program.Note
}

func check(owner, c string, bodies map[string][]string, dir program.Directory) error {
	at := owner

	for i, l := range bodies[c] {
		fail := func(format string, args ...interface{}) error {
			return errors.New(errors.DefinitionError, "%s %s: line %d %q: %s",
				owner, c, i+1, l, fmt.Sprintf(format, args...))
		}

		cmd, arg := line.Split(l)

		switch {
		case cmd == keyword.Switch:
			if arg == "" || strings.ContainsAny(arg, " \t") {
				return fail("switch needs a single program name")
			}

			if !Allowed(owner, arg, dir) {
				return fail("targets program %s", arg)
			}

			at = arg

		case cmd == keyword.Minimise:
			at = keyword.Desktop

		case cmd == keyword.Execute:
			if at == keyword.Desktop {
				return fail("execute from the desktop can open any program")
			}

		case cmd == keyword.Rem:

		case keyword.Is(cmd):
			if at == keyword.Desktop {
				return fail("%s with no program active", cmd)
			}

		case at == keyword.Desktop:
			if !Allowed(owner, cmd, dir) {
				return fail("opens program %s", cmd)
			}

			at = cmd

		case at == owner:
			if _, ok := bodies[cmd]; !ok {
				return fail("%s declares no command %q", owner, cmd)
			}

		default:
			return fail("scratch note %s has no command %q", at, cmd)
		}
	}

	return nil
}

func checkCommand(c string, bodies map[string][]string) error {
	switch {
	case strings.ContainsAny(c, " \t"):
		return errors.New(errors.DefinitionError, "command name %q contains a space", c)
	case keyword.Is(c):
		return errors.New(errors.DefinitionError, "command name %q is reserved", c)
	}

	if _, ok := bodies[c]; ok {
		return errors.New(errors.DefinitionError, "command %q declared twice", c)
	}

	return nil
}

func checkOwner(owner string, dir program.Directory) error {
	switch {
	case owner == "" || strings.ContainsAny(owner, " \t"):
		return errors.New(errors.DefinitionError, "program name %q is not a single word", owner)
	case owner == keyword.Desktop || keyword.Is(owner):
		return errors.New(errors.DefinitionError, "program name %q is reserved", owner)
	}

	if _, ok := dir.Lookup(owner); ok {
		return errors.New(errors.DefinitionError, "program %s already exists", owner)
	}

	return nil
}
