// Released under an MIT license. See LICENSE.

// Package errors provides the error kinds reported by the logos interpreter.
//
// Every failure carries a Kind so that the top level can report what went
// wrong without inspecting messages. A failing instruction is wrapped in a
// Line that records where execution stopped.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an interpreter failure.
type Kind int

const (
	// Unknown is the kind of errors that did not originate in logos.
	Unknown Kind = iota
	ParseError
	UnknownCommandError
	ArgumentError
	DefinitionError
	CollaboratorError
	TargetError
	LimitError
	Interrupted
)

//nolint:gochecknoglobals
var names = [...]string{
	Unknown:             "Error",
	ParseError:          "ParseError",
	UnknownCommandError: "UnknownCommandError",
	ArgumentError:       "ArgumentError",
	DefinitionError:     "DefinitionError",
	CollaboratorError:   "CollaboratorError",
	TargetError:         "TargetError",
	LimitError:          "LimitError",
	Interrupted:         "Interrupted",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return names[Unknown]
	}

	return names[k]
}

// ErrUnknownCommand is returned by providers asked to handle a command they
// do not declare.
var ErrUnknownCommand = errors.New("unknown command")

// T (errors) is a classified interpreter error.
type T struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *T) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *T) Unwrap() error { return e.Err }

// New creates an error of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) *T {
	return &T{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err as kind k. The message may be empty.
func Wrap(k Kind, err error, format string, args ...interface{}) *T {
	return &T{Kind: k, Msg: fmt.Sprintf(format, args...), Err: err}
}

// UnknownCommand reports that command is not part of program's command set.
func UnknownCommand(program, command string) *T {
	return Wrap(UnknownCommandError, ErrUnknownCommand, "%s has no command %q", program, command)
}

// KindOf returns the kind of the innermost classified error in err's chain.
func KindOf(err error) Kind {
	k := Unknown

	for err != nil {
		if e, ok := err.(*T); ok { //nolint:errorlint
			k = e.Kind
		}

		err = errors.Unwrap(err)
	}

	return k
}

// Line records the instruction that was executing when an error occurred.
type Line struct {
	Step    int    // instruction number, counting from 1
	Program string // active target when the instruction was dispatched
	Text    string // the instruction as written
	Command string
	Err     error
}

func (l *Line) Error() string {
	where := fmt.Sprintf("%s: %q", l.Program, l.Text)
	if l.Step > 0 {
		where = fmt.Sprintf("%s: instruction %d %q", l.Program, l.Step, l.Text)
	}

	// Nested instructions (execute, user command bodies) report their own kind.
	var inner *Line
	if errors.As(l.Err, &inner) {
		return where + ": " + l.Err.Error()
	}

	return fmt.Sprintf("%s: %s: %v", where, KindOf(l.Err), l.Err)
}

func (l *Line) Unwrap() error { return l.Err }

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
