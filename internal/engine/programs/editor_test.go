package programs

import (
	"testing"

	"github.com/michaelmacinnis/logos/internal/errors"
)

func edit(t *testing.T, command, argument, buffer string) string {
	t.Helper()

	r, err := Editor().Handle(ctx(), request(command, argument, buffer))
	if err != nil {
		t.Fatalf("%s %q on %q: %v", command, argument, buffer, err)
	}

	return r.Buffer
}

func TestEditor(t *testing.T) {
	for _, tc := range []struct {
		command, argument, buffer, want string
	}{
		{"write", `"hello"`, "", "hello"},
		{"write", ` "a b" `, "x", "xa b"},
		{"write", "", "a", "a\n"},
		{"write", "a newline", "a", "a\n"},
		{"write", "quotemark", "", `"`},
		{"write", `$'tab\there'`, "", "tab\there"},

		{"backspace", "", "abc", "ab"},
		{"backspace", "2", "abc", "a"},
		{"backspace", "9", "abc", ""},
		{"backspace", "words", "one two three", "one two"},
		{"backspace", "2 words", "one two three", "one"},
		{"backspace", "lines", "a b\nc d", "a b"},
		{"backspace", "", "café", "caf"},

		{"count", "", "café", "4"},
		{"count", "words", "one two\nthree  four", "4"},
		{"count", "lines", "a\n\nb\n", "2"},
		{"count", "words", "", "0"},
		{"count", `"o"`, "foo boo", "4"},

		{"replace", `"a" with "b"`, "banana", "bbnbnb"},
		{"replace", `"a with b" with "c"`, "a with b, b", "c, b"},
		{"replace", `newline with " "`, "a\nb", "a b"},

		{"tailor", "", "abc", "c"},
		{"tailor", "2", "abc", "bc"},
		{"tailor", "2 words", "one two three", "two three"},
		{"tailor", "lines", "a\nb\nc", "c"},
		{"tailor", "5 words", "one two", "one two"},
	} {
		if got := edit(t, tc.command, tc.argument, tc.buffer); got != tc.want {
			t.Errorf("%s %q on %q = %q, want %q", tc.command, tc.argument, tc.buffer, got, tc.want)
		}
	}
}

func TestEditorAppend(t *testing.T) {
	r := request("append", "the clipboard", "a")
	r.Clipboard = "b"

	res, err := Editor().Handle(ctx(), r)
	if err != nil || res.Buffer != "ab" || res.Clipboard != nil {
		t.Fatalf("append = %+v, %v", res, err)
	}
}

func TestEditorErrors(t *testing.T) {
	for _, tc := range []struct {
		command, argument string
		kind              errors.Kind
	}{
		{"write", "hello", errors.ParseError},
		{"replace", `"a" by "b"`, errors.ParseError},
		{"count", "paragraphs", errors.ParseError},
		{"backspace", "two words", errors.ArgumentError},
		{"tailor", "-1", errors.ArgumentError},
		{"append", "the buffer", errors.ArgumentError},
	} {
		_, err := Editor().Handle(ctx(), request(tc.command, tc.argument, "text"))
		if errors.KindOf(err) != tc.kind {
			t.Errorf("%s %q: %v, want %v", tc.command, tc.argument, err, tc.kind)
		}
	}
}
