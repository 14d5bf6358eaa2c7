package programs

import (
	"bytes"
	"slices"
	"testing"
	"time"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

func names(ps []*program.T) []string {
	ns := make([]string, 0, len(ps))
	for _, p := range ps {
		ns = append(ns, p.Name)
	}

	return ns
}

func TestSandboxAndStandard(t *testing.T) {
	env := &Env{
		Output: &bytes.Buffer{},
		Now:    func() time.Time { return time.Unix(0, 0) },
		Random: bytes.NewReader(nil),
	}

	sandbox := names(Sandbox(env))
	for _, n := range []string{BrowserName, FilesName} {
		if slices.Contains(sandbox, n) {
			t.Errorf("sandbox includes %s", n)
		}
	}

	standard := names(Standard(env))
	if len(standard) != 11 {
		t.Fatalf("standard programs: %v", standard)
	}

	for _, n := range standard {
		p := Standard(env)[slices.Index(standard, n)]
		if p.Kind() != program.Builtin || len(p.Commands()) == 0 {
			t.Errorf("%s: kind %v, commands %v", n, p.Kind(), p.Commands())
		}
	}
}

func TestTerminalRun(t *testing.T) {
	r, err := Terminal().Handle(ctx(), request("run", "", "a\n\nb\r\nc"))
	if err != nil {
		t.Fatal(err)
	}

	if r.Buffer != "" || !r.Replace || !slices.Equal(r.Remainder, []string{"a", "b", "c"}) {
		t.Fatalf("run = %+v", r)
	}

	_, err = Terminal().Handle(ctx(), request("run", "now", "a"))
	if errors.KindOf(err) != errors.ArgumentError {
		t.Fatalf("run now: %v", err)
	}
}

func TestAssemblerCompile(t *testing.T) {
	text := "name twice\ncopy\npaste\n"

	r, err := Assembler().Handle(ctx(), request("compile", "Doubler", text))
	if err != nil {
		t.Fatal(err)
	}

	if r.Buffer != text || r.Effect == nil || r.Effect.Op != program.Define {
		t.Fatalf("compile = %+v", r)
	}

	if p := r.Effect.Program; p.Name != "Doubler" || !p.Has("twice") {
		t.Fatalf("compiled %s with %v", p.Name, p.Commands())
	}

	_, err = Assembler().Handle(ctx(), request("compile", "", text))
	if errors.KindOf(err) != errors.ArgumentError {
		t.Fatalf("compile without a name: %v", err)
	}

	_, err = Assembler().Handle(ctx(), request("compile", "Empty", "rem nothing"))
	if errors.KindOf(err) != errors.DefinitionError {
		t.Fatalf("compile with no declarations: %v", err)
	}

	_, err = Assembler().Handle(ctx(), request("link", "", text))
	if !errors.Is(err, errors.ErrUnknownCommand) {
		t.Fatalf("link: %v", err)
	}
}
