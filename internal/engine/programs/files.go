// Released under an MIT license. See LICENSE.

package programs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

const folderAt = "the folder at "

// Files reads and writes the real filesystem.
func Files() program.Table {
	return program.Table{
		"create": program.Pure(func(a, b string) (string, error) {
			folder, p, err := target(a)
			if err != nil {
				return "", err
			}

			if folder {
				err = os.MkdirAll(p, 0o777)
			} else {
				err = touch(p)
			}

			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "create")
			}

			return b, nil
		}),
		"delete": program.Pure(func(a, b string) (string, error) {
			folder, p, err := target(a)
			if err != nil {
				return "", err
			}

			if folder {
				info, statErr := os.Stat(p)
				if statErr == nil && !info.IsDir() {
					return "", errors.New(errors.CollaboratorError, "delete: %s is not a folder", p)
				}
			}

			err = os.Remove(p)
			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "delete")
			}

			return b, nil
		}),
		"load": program.Pure(func(a, _ string) (string, error) {
			p, err := expand(a)
			if err != nil {
				return "", err
			}

			data, err := os.ReadFile(p)
			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "load")
			}

			return string(data), nil
		}),
		"save": program.Pure(func(a, b string) (string, error) {
			p, err := expand(a)
			if err != nil {
				return "", err
			}

			err = os.WriteFile(p, []byte(b), 0o666)
			if err != nil {
				return "", errors.Wrap(errors.CollaboratorError, err, "save")
			}

			return "", nil
		}),
	}
}

// expand resolves a path argument, including a leading ~.
func expand(a string) (string, error) {
	p := strings.TrimSpace(a)
	if p == "" {
		return "", errors.New(errors.ArgumentError, "a path is required")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.CollaboratorError, err, "expand %s", p)
		}

		p = filepath.Join(home, p[1:])
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrap(errors.CollaboratorError, err, "resolve %s", p)
	}

	return abs, nil
}

func target(a string) (bool, string, error) {
	rest, folder := strings.CutPrefix(strings.TrimSpace(a), folderAt)

	p, err := expand(rest)

	return folder, p, err
}

func touch(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	now := time.Now()

	return os.Chtimes(p, now, now)
}
