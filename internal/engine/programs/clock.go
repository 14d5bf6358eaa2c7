// Released under an MIT license. See LICENSE.

package programs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/dustin/go-humanize"
	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
)

//nolint:gochecknoglobals
var nanoseconds = map[string]int64{
	"secs":         int64(time.Second),
	"seconds":      int64(time.Second),
	"milliseconds": int64(time.Millisecond),
	"mins":         int64(time.Minute),
	"minutes":      int64(time.Minute),
}

// Clock tells the time and waits.
func Clock(now func() time.Time) program.Table {
	return program.Table{
		"time": program.Pure(func(a, _ string) (string, error) {
			t := now()

			switch a {
			case "", "in terms of local time":
				return Pretty(t.Local()), nil
			case "in terms of utc":
				return Pretty(t.UTC()), nil
			case "in terms of the unix epoch":
				return strconv.FormatFloat(float64(t.UnixNano())/1e9, 'f', -1, 64), nil
			}

			return "", errors.New(errors.ArgumentError,
				"time takes \"in terms of\" local time, utc or the unix epoch, not %q", a)
		}),
		"wait": wait,
	}
}

// Pretty formats t as, for example,
// "8 seconds past 9:06 AM on Monday the 3rd of August, 2019".
func Pretty(t time.Time) string {
	unit := "seconds"
	if t.Second() == 1 {
		unit = "second"
	}

	return fmt.Sprintf("%d %s past %s on %s the %s of %s",
		t.Second(), unit, t.Format("3:04 PM"), t.Format("Monday"),
		humanize.Ordinal(t.Day()), t.Format("January, 2006"))
}

// Duration parses "N [unit]" where N may be fractional and unit defaults
// to seconds.
func Duration(a string) (time.Duration, error) {
	fields := strings.Fields(a)
	scale := int64(time.Second)

	if len(fields) > 1 {
		s, ok := nanoseconds[fields[len(fields)-1]]
		if !ok {
			return 0, errors.New(errors.ArgumentError, "unknown unit in %q", a)
		}

		scale = s
		fields = fields[:len(fields)-1]
	}

	if len(fields) != 1 {
		return 0, errors.New(errors.ArgumentError, "wait takes an amount and a unit, not %q", a)
	}

	n, _, err := apd.NewFromString(fields[0])
	if err != nil || n.Negative || n.Form != apd.Finite {
		return 0, errors.New(errors.ArgumentError, "%q is not a length of time", fields[0])
	}

	_, err = arithmetic.Mul(n, n, apd.New(scale, 0))
	if err == nil {
		_, err = arithmetic.RoundToIntegralValue(n, n)
	}

	var ns int64
	if err == nil {
		ns, err = n.Int64()
	}

	if err != nil {
		return 0, errors.Wrap(errors.ArgumentError, err, "%q is too long", a)
	}

	return time.Duration(ns), nil
}

func wait(ctx context.Context, r *program.Request) (*program.Result, error) {
	d, err := Duration(r.Argument)
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, errors.Wrap(errors.Interrupted, ctx.Err(), "wait")
	}

	return &program.Result{Buffer: r.Buffer}, nil
}
