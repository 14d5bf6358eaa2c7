/*
Logos is an interpreter for a language of programs and buffers.

A session starts on the Desktop. Typing a program's name opens it, after
which its commands act on its buffer:

    Calculator 2+3
    =
    copy
    minimise
    Notes
    paste

The keywords copy, cut, paste, name, switch, minimise, execute and rem work
whatever program is active. New programs are compiled from declarations
written in the Assembler's buffer.

Logos is released under an MIT-style license.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/michaelmacinnis/logos/internal/engine"
	"github.com/michaelmacinnis/logos/internal/engine/programs"
	"github.com/michaelmacinnis/logos/internal/system/config"
	"github.com/michaelmacinnis/logos/internal/system/logger"
	"github.com/michaelmacinnis/logos/internal/system/options"
	"github.com/michaelmacinnis/logos/internal/ui"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logos: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := options.Parse(argv)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if opts.LogLevel != "" {
		level, err = logger.ParseLevel(opts.LogLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	file := cfg.Log.File
	if opts.LogFile != "" {
		file = opts.LogFile
	}

	log, closeLog, err := logger.New(stderr, level, file)
	if err != nil {
		return err
	}

	defer closeLog()

	if cfg.Path != "" {
		log.Debug("loaded settings", "path", cfg.Path)
	}

	env := &programs.Env{
		Input:  programs.LineReader(stdin, stdout),
		Output: stdout,
		Client: programs.NewClient(cfg.Browser.Timeout.Duration),
		Scheme: cfg.Browser.Scheme,
	}

	builtins := programs.Standard
	if opts.Sandbox || cfg.Sandbox {
		builtins = programs.Sandbox
	}

	session := func() *engine.T {
		return engine.New(
			engine.WithLimit(cfg.DepthLimit),
			engine.WithLogger(log),
			engine.WithPrograms(builtins(env)...),
		)
	}

	if !opts.Interactive {
		text, err := instructions(opts, stdin)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return session().Evaluate(ctx, text)
	}

	u, err := ui.New(cfg.Prompt, cfg.History, log)
	if err != nil {
		return err
	}

	defer u.Close()

	env.Input = u.Input
	e := session()

	if opts.Script != "" || opts.Command != "" {
		text, err := instructions(opts, stdin)
		if err != nil {
			return err
		}

		err = e.Evaluate(context.Background(), text)
		if err != nil {
			fmt.Fprintf(stderr, "logos: %v\n", err)
		}
	}

	return u.Run(e)
}

func instructions(opts *options.T, stdin io.Reader) (string, error) {
	switch {
	case opts.Command != "":
		return opts.Command, nil
	case opts.Script != "":
		b, err := os.ReadFile(opts.Script)

		return string(b), err
	}

	b, err := io.ReadAll(stdin)

	return string(b), err
}
