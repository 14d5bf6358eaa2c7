// Released under an MIT license. See LICENSE.

// Package options parses the logos command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "logos 0.1.0"

const usage = `logos

Usage:
  logos [options] SCRIPT
  logos [options] -c COMMAND
  logos [options] [-s]
  logos -h
  logos -v

Arguments:
  SCRIPT     Path to a file of logos instructions.

Options:
  -c, --command=COMMAND  Run the specified instructions.
  --config=FILE          Read settings from FILE.
  --log-file=FILE        Also write JSON logs to FILE.
  --log-level=LEVEL      Log at LEVEL: debug, info, warn or error.
  --sandbox              Do not register Files or Browser.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read instructions from stdin.
  -h, --help             Display this help.
  -v, --version          Print logos version.

If logos's stdin is a TTY, and logos was invoked with no script or command,
or was explicitly directed to read instructions from stdin, interactive
mode is enabled. Otherwise, it is disabled.
`

// T (options) is the parsed command line.
type T struct {
	Command     string
	Config      string
	Interactive bool
	LogFile     string
	LogLevel    string
	Sandbox     bool
	Script      string
}

//nolint:gochecknoglobals
var (
	parser = &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	terminal = func() bool {
		fd := os.Stdin.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// Parse parses argv, which does not include the program name.
func Parse(argv []string) (*T, error) {
	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	t := &T{}

	t.Command, _ = opts.String("--command")
	t.Config, _ = opts.String("--config")
	t.LogFile, _ = opts.String("--log-file")
	t.LogLevel, _ = opts.String("--log-level")
	t.Sandbox, _ = opts.Bool("--sandbox")
	t.Script, _ = opts.String("SCRIPT")

	if t.Script == "" && t.Command == "" {
		t.Interactive = terminal()
	}

	invert, _ := opts.Bool("--interactive")
	t.Interactive = t.Interactive != invert

	return t, nil
}
