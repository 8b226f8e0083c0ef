package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	toggle    key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	buildInfo key.Binding
	register  key.Binding
	logout    key.Binding
	reload    key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	toggle:    key.NewBinding(key.WithKeys(" ", "left", "right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
	logout:    key.NewBinding(key.WithKeys("x")),
	reload:    key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("y", "s")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
