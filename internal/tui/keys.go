package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	toggle  key.Binding
	esc     key.Binding
	quit    key.Binding
	preview key.Binding
	reload  key.Binding
	copy    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	toggle:  key.NewBinding(key.WithKeys("enter", " ", "right", "l")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	preview: key.NewBinding(key.WithKeys("p")),
	reload:  key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
}
