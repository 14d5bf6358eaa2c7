// Released under an MIT license. See LICENSE.

// Package keyword names the reserved commands that are honoured whatever
// program is active.
package keyword

const (
	Copy     = "copy"
	Cut      = "cut"
	Execute  = "execute"
	Minimise = "minimise"
	Name     = "name"
	Paste    = "paste"
	Rem      = "rem"
	Switch   = "switch"
)

// Desktop is the name of the sentinel target. No program can take it.
const Desktop = "Desktop"

// All returns the reserved keywords in alphabetical order.
func All() []string {
	return []string{Copy, Cut, Execute, Minimise, Name, Paste, Rem, Switch}
}

// Is returns true if s is a reserved keyword.
func Is(s string) bool {
	switch s {
	case Copy, Cut, Execute, Minimise, Name, Paste, Rem, Switch:
		return true
	}

	return false
}
