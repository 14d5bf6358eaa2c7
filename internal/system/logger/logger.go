// Released under an MIT license. See LICENSE.

// Package logger builds the structured logger for a logos session.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger that writes text records at level or above to w and,
// if file is not empty, JSON records to file. Every record carries the
// session id. The returned function closes the file.
func New(w io.Writer, level slog.Level, file string) (*slog.Logger, func() error, error) {
	lv := new(slog.LevelVar)
	lv.Set(level)

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}),
	}

	closer := func() error { return nil }

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lv}))
		closer = f.Close
	}

	l := slog.New(slogmulti.Fanout(handlers...)).With("session", uuid.NewString())

	return l, closer, nil
}

// ParseLevel converts a name such as "debug" or "warn" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level

	err := l.UnmarshalText([]byte(s))

	return l, err
}
