// Package ui holds pieces shared by the player's screens.
package ui

// Base tracks the terminal size a component renders into.
// Embed it in component models to get the size methods.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width. Zero means unknown.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height. Zero means unknown.
func (b Base) Height() int {
	return b.height
}
