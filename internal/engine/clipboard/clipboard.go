// Released under an MIT license. See LICENSE.

// Package clipboard provides the single string cell shared by all programs.
package clipboard

// T (clipboard) holds the text most recently cut or copied.
type T struct {
	text string
}

// New creates an empty clipboard.
func New() *T {
	return &T{}
}

// Get returns the clipboard's contents without changing them.
func (c *T) Get() string {
	return c.text
}

// Set replaces the clipboard's contents.
func (c *T) Set(text string) {
	c.text = text
}
