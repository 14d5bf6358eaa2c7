// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for logos.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/logos/internal/engine/keyword"
	"github.com/michaelmacinnis/logos/internal/system/history"
	"github.com/peterh/liner"
)

// Session is the interface for things that evaluate what the user types.
type Session interface {
	Buffer() (string, bool)
	Clipboard() string
	Commands() []string
	Evaluate(ctx context.Context, text string) error
	Names() []string
	Target() string
}

// T (ui) is an interactive terminal.
type T struct {
	cli      *liner.State
	cooked   liner.ModeApplier
	uncooked liner.ModeApplier

	history string
	log     *slog.Logger
	prompt  string

	stdout io.Writer
	stderr io.Writer
}

// New takes over the terminal. History is read from the file history.
func New(prompt, history string, log *slog.Logger) (*T, error) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return nil, err
	}

	cli := liner.NewLiner()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		cli.Close()

		return nil, err
	}

	cli.SetCtrlCAborts(true)

	u := &T{
		cli:      cli,
		cooked:   cooked,
		uncooked: uncooked,
		history:  history,
		log:      log,
		prompt:   prompt,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	u.load()

	return u, nil
}

// Close saves history and restores the terminal.
func (u *T) Close() error {
	if u.history != "" {
		err := history.Save(u.history, u.cli.WriteHistory)
		if err != nil {
			u.log.Warn("cannot save history", "path", u.history, "error", err)
		}
	}

	return u.cli.Close()
}

// Input prompts for a line while an evaluation is in progress.
func (u *T) Input(prompt string) (string, error) {
	err := u.uncooked.ApplyMode()
	if err != nil {
		return "", err
	}

	defer func() {
		_ = u.cooked.ApplyMode()
	}()

	return u.cli.Prompt(prompt)
}

// Run reads instructions until EOF and hands them to s.
func (u *T) Run(s Session) error {
	u.cli.SetWordCompleter(func(l string, pos int) (string, []string, string) {
		return complete(s, l, pos)
	})

	for {
		l, err := u.cli.Prompt(u.prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(u.stdout)

			return nil
		default:
			return err
		}

		if strings.TrimSpace(l) == "" {
			continue
		}

		u.cli.AppendHistory(l)

		err = u.evaluate(s, l)
		if err != nil {
			return err
		}
	}
}

func (u *T) evaluate(s Session, l string) error {
	err := u.cooked.ApplyMode()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err = s.Evaluate(ctx, l)

	stop()

	if err != nil {
		fmt.Fprintf(u.stderr, "logos: %v\n", err)
	}

	for _, line := range status(s, width()) {
		fmt.Fprintln(u.stdout, line)
	}

	return u.uncooked.ApplyMode()
}

func (u *T) load() {
	if u.history == "" {
		return
	}

	err := history.Load(u.history, u.cli.ReadHistory)
	if err != nil {
		u.log.Warn("cannot load history", "path", u.history, "error", err)
	}
}

// complete offers keywords and commands for the first word of an
// instruction and program names for the argument of switch.
func complete(s Session, l string, pos int) (string, []string, string) {
	head, tail := l[:pos], l[pos:]

	var candidates []string

	word := head

	c, a, found := strings.Cut(head, " ")
	switch {
	case !found:
		candidates = keyword.All()
		if s.Target() == keyword.Desktop {
			candidates = append(candidates, s.Names()...)
		} else {
			candidates = append(candidates, s.Commands()...)
		}
	case c == keyword.Switch && !strings.Contains(a, " "):
		candidates = append([]string{keyword.Desktop}, s.Names()...)
		word = a
	default:
		return head, nil, tail
	}

	prefix := head[:len(head)-len(word)]

	var completions []string

	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, word) {
			completions = append(completions, candidate+" ")
		}
	}

	sort.Strings(completions)

	return prefix, completions, tail
}

// status describes the clipboard and the active buffer, one line each.
func status(s Session, width int) []string {
	active := keyword.Desktop
	if b, ok := s.Buffer(); ok {
		active = "Buffer of " + s.Target() + ": " + adapted.CanonicalString(b)
	}

	lines := []string{
		"Clipboard: " + adapted.CanonicalString(s.Clipboard()),
		active,
	}

	if width > 0 {
		for i, l := range lines {
			lines[i] = runewidth.Truncate(l, width, "...")
		}
	}

	return lines
}
