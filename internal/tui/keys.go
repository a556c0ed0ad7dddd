package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	retrieve key.Binding
	purge    key.Binding
	copy     key.Binding
	reload   key.Binding
	version  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	retrieve: key.NewBinding(key.WithKeys("r")),
	purge:    key.NewBinding(key.WithKeys("p")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("g")),
	version:  key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
