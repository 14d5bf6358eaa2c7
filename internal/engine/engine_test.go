package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/michaelmacinnis/logos/internal/engine"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/engine/programs"
	"github.com/michaelmacinnis/logos/internal/errors"
)

func session(t *testing.T, opts ...engine.Option) *engine.T {
	t.Helper()

	env := &programs.Env{
		Output: &bytes.Buffer{},
		Now:    func() time.Time { return time.Unix(0, 0).UTC() },
		Random: bytes.NewReader(nil),
	}

	return engine.New(append([]engine.Option{
		engine.WithPrograms(programs.Sandbox(env)...),
	}, opts...)...)
}

func evaluate(t *testing.T, e *engine.T, text string) {
	t.Helper()

	err := e.Evaluate(context.Background(), text)
	if err != nil {
		t.Fatalf("%q: %v", text, err)
	}
}

func fails(t *testing.T, e *engine.T, text string, k errors.Kind) error {
	t.Helper()

	err := e.Evaluate(context.Background(), text)
	if errors.KindOf(err) != k {
		t.Fatalf("%q: got %v, want %v", text, err, k)
	}

	return err
}

func buffer(t *testing.T, e *engine.T, name string) string {
	t.Helper()

	p, ok := e.Program(name)
	if !ok {
		t.Fatalf("no program %s", name)
	}

	return p.Buffer
}

func TestSwitchRoundTrip(t *testing.T) {
	e := session(t)

	if e.Target() != "Desktop" {
		t.Fatalf("started on %s", e.Target())
	}

	evaluate(t, e, "Calculator\nswitch Notes\nswitch Calculator")

	if e.Target() != "Calculator" {
		t.Fatalf("target %s, want Calculator", e.Target())
	}

	evaluate(t, e, "minimise\nFirst alpha\ncopy\nminimise\nSecond beta\npaste\nswitch First")

	if b, _ := e.Buffer(); b != "alpha" {
		t.Fatalf("First buffer %q after switching away and back", b)
	}

	if b := buffer(t, e, "Second"); b != "betaalpha" {
		t.Fatalf("Second buffer %q", b)
	}

	evaluate(t, e, "switch Desktop")

	if _, ok := e.Buffer(); ok || e.Target() != "Desktop" {
		t.Fatalf("switch Desktop left %s active", e.Target())
	}
}

func TestCutPaste(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Notes hello\ncut\npaste")

	if b := buffer(t, e, "Notes"); b != "hello" {
		t.Fatalf("cut then paste gave %q", b)
	}

	evaluate(t, e, "cut\nswitch Other\npaste")

	if buffer(t, e, "Notes") != "" || buffer(t, e, "Other") != "hello" {
		t.Fatalf("transfer: Notes %q, Other %q", buffer(t, e, "Notes"), buffer(t, e, "Other"))
	}
}

func TestCopyPasteGrows(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Notes ab\ncopy\npaste\npaste")

	if b := buffer(t, e, "Notes"); b != "ababab" {
		t.Fatalf("got %q", b)
	}

	if e.Clipboard() != "ab" {
		t.Fatalf("clipboard %q", e.Clipboard())
	}

	evaluate(t, e, "copy all")

	if e.Clipboard() != "ababab" {
		t.Fatalf("copy all: clipboard %q", e.Clipboard())
	}
}

func TestNotesAreReused(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Notes first\nminimise\nNotes\nname")

	if b := buffer(t, e, "Notes"); b != "Notes" {
		t.Fatalf("got %q", b)
	}

	count := 0
	for _, n := range e.Names() {
		if n == "Notes" {
			count++
		}
	}

	if count != 1 {
		t.Fatalf("Notes created %d times", count)
	}
}

func TestDesktopOpenReplacesBuffer(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Calculator 1+2\n=\nminimise\nCalculator")

	if b, _ := e.Buffer(); b != "3" {
		t.Fatalf("buffer %q", b)
	}
}

func TestRunReplacesInstructions(t *testing.T) {
	e := session(t)

	p, _ := e.Program(programs.TerminalName)
	p.Buffer = "minimise\nResult done\n"

	evaluate(t, e, "Terminal\nrun\nNever reached")

	if _, ok := e.Program("Never"); ok {
		t.Fatal("instruction after run was executed")
	}

	if buffer(t, e, "Result") != "done" || buffer(t, e, "Terminal") != "" {
		t.Fatalf("Result %q, Terminal %q", buffer(t, e, "Result"), buffer(t, e, "Terminal"))
	}
}

func TestExecuteWithPrefix(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Scratch 3\ncopy\nminimise\nCalculator 4\nexecute +\ncopy")

	if e.Clipboard() != "7" {
		t.Fatalf("clipboard %q after execute", e.Clipboard())
	}

	if len(e.Remaining()) != 0 {
		t.Fatalf("remaining %v", e.Remaining())
	}
}

func TestExecuteIsBounded(t *testing.T) {
	e := session(t, engine.WithLimit(8))

	err := fails(t, e, "Loop execute\ncopy\nexecute", errors.LimitError)
	if !strings.Contains(err.Error(), "instruction 3") {
		t.Fatalf("error %q does not locate the instruction", err)
	}
}

func TestInstructionsNumberedPerInput(t *testing.T) {
	e := session(t)

	evaluate(t, e, "Notes x\ncopy\npaste\nminimise")

	err := fails(t, e, "Notes\nfrobnicate", errors.UnknownCommandError)
	if !strings.Contains(err.Error(), "instruction 2 ") {
		t.Fatalf("error %q does not count from the start of the input", err)
	}
}

func TestErrorsDiscardRemainder(t *testing.T) {
	e := session(t)

	fails(t, e, "Notes x\nfrobnicate\nminimise", errors.UnknownCommandError)

	if len(e.Remaining()) != 0 {
		t.Fatalf("remaining %v", e.Remaining())
	}

	if e.Target() != "Notes" {
		t.Fatalf("target %s after failure", e.Target())
	}

	evaluate(t, e, "paste")
}

func TestKeywordFailures(t *testing.T) {
	e := session(t)

	fails(t, e, "paste", errors.TargetError)
	fails(t, e, "copy", errors.TargetError)
	fails(t, e, "Notes\npaste now", errors.ArgumentError)
	fails(t, e, "switch two words", errors.ArgumentError)
	fails(t, e, "name Foo", errors.ArgumentError)
	fails(t, e, "cut some", errors.ArgumentError)
	fails(t, e, " leading", errors.ParseError)
}

func TestInterrupted(t *testing.T) {
	e := session(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Evaluate(ctx, "Notes")
	if errors.KindOf(err) != errors.Interrupted {
		t.Fatalf("got %v", err)
	}
}

func compile(t *testing.T, e *engine.T, name, declarations string) error {
	t.Helper()

	p, _ := e.Program(programs.AssemblerName)
	p.Buffer = declarations

	return e.Evaluate(context.Background(), "minimise\nAssembler\ncompile "+name+"\nminimise")
}

func TestUserProgram(t *testing.T) {
	e := session(t)

	err := compile(t, e, "Doubler", `rem doubles its buffer
name twice
copy
paste
name stash
copy
switch DoublerScratch
paste
switch Doubler
`)
	if err != nil {
		t.Fatal(err)
	}

	evaluate(t, e, "Notes keep\ncopy\nminimise\nDoubler ab\ntwice\nstash")

	if b := buffer(t, e, "Doubler"); b != "abab" {
		t.Fatalf("Doubler %q", b)
	}

	if b := buffer(t, e, "DoublerScratch"); b != "abab" {
		t.Fatalf("DoublerScratch %q", b)
	}

	if e.Clipboard() != "keep" || e.Target() != "Doubler" {
		t.Fatalf("clipboard %q, target %s", e.Clipboard(), e.Target())
	}

	fails(t, e, "twice again", errors.ArgumentError)

	err = compile(t, e, "Doubler", "name other\ncopy")
	if errors.KindOf(err) != errors.DefinitionError {
		t.Fatalf("redefinition: %v", err)
	}
}

func TestUserProgramIsConfined(t *testing.T) {
	e := session(t)

	for _, body := range []string{
		"name escape\nminimise\nCalculator",
		"name escape\nswitch Notes",
		"name escape\nswitch Calculator",
		"name escape\nminimise\nexecute",
		"name escape\nundeclared",
	} {
		err := compile(t, e, "Sealed", body)
		if errors.KindOf(err) != errors.DefinitionError {
			t.Errorf("%q: %v", body, err)
		}
	}

	if _, ok := e.Program("Sealed"); ok {
		t.Fatal("rejected program was registered")
	}
}

func TestUserRecursionIsBounded(t *testing.T) {
	e := session(t, engine.WithLimit(16))

	err := compile(t, e, "Echo", "name again\nagain")
	if err != nil {
		t.Fatal(err)
	}

	fails(t, e, "Echo\nagain", errors.LimitError)

	if e.Target() != "Echo" {
		t.Fatalf("target %s", e.Target())
	}
}

func TestUnknownCommandOnNote(t *testing.T) {
	e := session(t)

	err := fails(t, e, "Shopping milk\n=", errors.UnknownCommandError)
	if !errors.Is(err, errors.ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}

func fake() *program.T {
	return program.NewBuiltin("Fake", program.Table{
		"grab": func(_ context.Context, r *program.Request) (*program.Result, error) {
			s := "grabbed " + r.Argument

			return &program.Result{Buffer: r.Buffer, Clipboard: &s}, nil
		},
		"open": func(_ context.Context, r *program.Request) (*program.Result, error) {
			return &program.Result{
				Buffer: r.Buffer,
				Effect: &program.Effect{Op: program.Open, Name: r.Argument},
			}, nil
		},
		"close": func(_ context.Context, r *program.Request) (*program.Result, error) {
			return &program.Result{
				Buffer: "closed",
				Effect: &program.Effect{Op: program.Close, Name: "Fake"},
			}, nil
		},
	})
}

func TestProviderEffects(t *testing.T) {
	e := engine.New(engine.WithPrograms(fake()))

	evaluate(t, e, "Fake\ngrab it")

	if e.Clipboard() != "grabbed it" {
		t.Fatalf("clipboard %q", e.Clipboard())
	}

	evaluate(t, e, "open Elsewhere")

	if e.Target() != "Elsewhere" {
		t.Fatalf("target %s", e.Target())
	}

	evaluate(t, e, "switch Fake\nclose")

	if e.Target() != "Desktop" || buffer(t, e, "Fake") != "closed" {
		t.Fatalf("target %s, buffer %q", e.Target(), buffer(t, e, "Fake"))
	}

	evaluate(t, e, "Fake\nopen Desktop")

	if e.Target() != "Desktop" {
		t.Fatalf("target %s", e.Target())
	}
}
