package programs

import (
	"bytes"
	"testing"

	"github.com/michaelmacinnis/logos/internal/errors"
)

func TestCharacters(t *testing.T) {
	c := Characters()

	r, err := c.Handle(ctx(), request("codepoints", "", "Hé!"))
	if err != nil || r.Buffer != "72 233 33" {
		t.Fatalf("codepoints = %+v, %v", r, err)
	}

	r, err = c.Handle(ctx(), request("Unicode", "", "72 233.9\n33"))
	if err != nil || r.Buffer != "Hé!" {
		t.Fatalf("Unicode = %+v, %v", r, err)
	}

	for _, bad := range []string{"-1", "x", "1114112"} {
		_, err = c.Handle(ctx(), request("Unicode", "", bad))
		if errors.KindOf(err) != errors.ArgumentError {
			t.Errorf("Unicode %q: %v", bad, err)
		}
	}
}

func TestMines(t *testing.T) {
	random := bytes.NewReader([]byte{0xA5, 0xFF, 0x00, 0x0F})
	m := Mines(random)

	r, err := m.Handle(ctx(), request("generate", "8", ""))
	if err != nil || r.Buffer != "10100101" {
		t.Fatalf("generate 8 = %+v, %v", r, err)
	}

	r, err = m.Handle(ctx(), request("generate", "4 by 2", ""))
	if err != nil || r.Buffer != "1111\n0000" {
		t.Fatalf("generate 4 by 2 = %+v, %v", r, err)
	}

	r, err = m.Handle(ctx(), request("generate", "0", "old"))
	if err != nil || r.Buffer != "" {
		t.Fatalf("generate 0 = %+v, %v", r, err)
	}

	_, err = m.Handle(ctx(), request("generate", "9", ""))
	if errors.KindOf(err) != errors.CollaboratorError {
		t.Fatalf("generate with exhausted randomness: %v", err)
	}

	for _, bad := range []string{
		"", "many", "2 x 3", "-4",
		"4611686018427387904 by 4",
		"4 by 4611686018427387904",
		"2048 by 1024",
	} {
		_, err = m.Handle(ctx(), request("generate", bad, ""))
		if errors.KindOf(err) != errors.ArgumentError {
			t.Errorf("generate %q: %v", bad, err)
		}
	}
}

func TestSolitaire(t *testing.T) {
	s := Solitaire()

	for _, tc := range []struct {
		argument, buffer, want string
	}{
		{"", "pear\napple\nBanana", "apple\nBanana\npear"},
		{"in reverse", "b\na\nc\n", "c\nb\na\n"},
		{"", "", ""},
	} {
		r, err := s.Handle(ctx(), request("sort", tc.argument, tc.buffer))
		if err != nil || r.Buffer != tc.want {
			t.Errorf("sort %q on %q = %+v, %v; want %q", tc.argument, tc.buffer, r, err, tc.want)
		}
	}

	_, err := s.Handle(ctx(), request("sort", "by suit", "a"))
	if errors.KindOf(err) != errors.ArgumentError {
		t.Fatalf("sort by suit: %v", err)
	}
}
