// Released under an MIT license. See LICENSE.

package programs

import (
	"crypto/rand"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/michaelmacinnis/logos/internal/engine/program"
)

// Names of the builtin programs.
const (
	AssemblerName  = "Assembler"
	BrowserName    = "Browser"
	CalculatorName = "Calculator"
	CharactersName = "Characters"
	ClockName      = "Clock"
	EditorName     = "Editor"
	EmailName      = "Email"
	FilesName      = "Files"
	MinesName      = "Mines"
	SolitaireName  = "Solitaire"
	TerminalName   = "Terminal"
)

// Env is what the builtin programs need from the outside world.
type Env struct {
	// Input prompts for and returns a line of input.
	Input func(prompt string) (string, error)
	// Output receives mail sent by Email.
	Output io.Writer

	Client *http.Client
	Scheme string

	Now    func() time.Time
	Random io.Reader
}

func (env *Env) defaults() *Env {
	e := Env{}
	if env != nil {
		e = *env
	}

	if e.Input == nil {
		e.Input = LineReader(os.Stdin, os.Stdout)
	}

	if e.Output == nil {
		e.Output = os.Stdout
	}

	if e.Client == nil {
		e.Client = NewClient(0)
	}

	if e.Scheme == "" {
		e.Scheme = "https"
	}

	if e.Now == nil {
		e.Now = time.Now
	}

	if e.Random == nil {
		e.Random = rand.Reader
	}

	return &e
}

// Sandbox returns the builtin programs that cannot touch the filesystem or
// network.
func Sandbox(env *Env) []*program.T {
	env = env.defaults()

	return []*program.T{
		program.NewBuiltin(AssemblerName, Assembler()),
		program.NewBuiltin(CalculatorName, Calculator()),
		program.NewBuiltin(CharactersName, Characters()),
		program.NewBuiltin(ClockName, Clock(env.Now)),
		program.NewBuiltin(EditorName, Editor()),
		program.NewBuiltin(EmailName, Email(env.Input, env.Output)),
		program.NewBuiltin(MinesName, Mines(env.Random)),
		program.NewBuiltin(SolitaireName, Solitaire()),
		program.NewBuiltin(TerminalName, Terminal()),
	}
}

// Standard returns every builtin program.
func Standard(env *Env) []*program.T {
	env = env.defaults()

	return append(Sandbox(env),
		program.NewBuiltin(BrowserName, Browser(env.Client, env.Scheme)),
		program.NewBuiltin(FilesName, Files()),
	)
}
