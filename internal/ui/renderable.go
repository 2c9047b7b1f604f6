// Package ui holds the minimal contract shared by terminal components.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
