// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	newNote key.Binding
	edit    key.Binding
	pin     key.Binding
	archive key.Binding
	delete  key.Binding
	search  key.Binding
	copy    key.Binding
	retry   key.Binding
	info    key.Binding
	yes     key.Binding
	no      key.Binding

	// editor
	save      key.Binding
	nextColor key.Binding
	prevColor key.Binding
	togglePin key.Binding
	bold      key.Binding
	italic    key.Binding
	strike    key.Binding
	bullet    key.Binding
	ordered   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newNote: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e")),
	pin:     key.NewBinding(key.WithKeys("p")),
	archive: key.NewBinding(key.WithKeys("a")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d")),
	search:  key.NewBinding(key.WithKeys("/")),
	copy:    key.NewBinding(key.WithKeys("c")),
	retry:   key.NewBinding(key.WithKeys("r")),
	info:    key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),

	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	nextColor: key.NewBinding(key.WithKeys("alt+right")),
	prevColor: key.NewBinding(key.WithKeys("alt+left")),
	togglePin: key.NewBinding(key.WithKeys("alt+p")),
	bold:      key.NewBinding(key.WithKeys("alt+b")),
	italic:    key.NewBinding(key.WithKeys("alt+i")),
	strike:    key.NewBinding(key.WithKeys("alt+s")),
	bullet:    key.NewBinding(key.WithKeys("alt+l")),
	ordered:   key.NewBinding(key.WithKeys("alt+o")),
}
