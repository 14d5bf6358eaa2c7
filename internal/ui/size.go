// Released under an MIT license. See LICENSE.

package ui

// Used when the terminal will not report its size.
const defaultWidth = 80
