// Released under an MIT license. See LICENSE.

// Package history persists REPL history between sessions.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load passes the history file at path to read. A missing file is not an
// error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := file(path, os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes a truncated history file at path to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := file(path, os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Expand replaces a leading ~ in path with the user's home directory.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

func file(path string, op func(string) (*os.File, error)) (*os.File, error) {
	path, err := Expand(path)
	if err != nil {
		return nil, err
	}

	return op(path)
}
