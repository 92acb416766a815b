package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

type keyMap struct {
	Quit            key.Binding
	Add             key.Binding
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	Edit            key.Binding
	Delete          key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
	FilterAll       key.Binding
	FilterCompleted key.Binding
	FilterPending   key.Binding
	FilterNext      key.Binding
	Theme           key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:            binding("quit", k.Quit, "ctrl+c"),
		Add:             binding("add", k.Add),
		Up:              binding("up", k.Up, "up"),
		Down:            binding("down", k.Down, "down"),
		Toggle:          binding("complete", k.Toggle),
		Edit:            binding("edit", k.Edit),
		Delete:          binding("delete", k.Delete),
		Confirm:         binding("confirm", k.Confirm),
		Cancel:          binding("cancel", k.Cancel),
		FilterAll:       binding("all", k.FilterAll),
		FilterCompleted: binding("completed", k.FilterCompleted),
		FilterPending:   binding("pending", k.FilterPending),
		FilterNext:      binding("next filter", k.FilterNext),
		Theme:           binding("dark mode", k.Theme),
	}
}

func binding(desc string, keys ...string) key.Binding {
	var ks []string
	for _, k := range keys {
		if k != "" {
			ks = append(ks, k)
		}
	}
	label := ""
	if len(ks) > 0 {
		label = ks[0]
		if label == " " {
			label = "space"
		}
	}
	return key.NewBinding(key.WithKeys(ks...), key.WithHelp(label, desc))
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.FilterNext, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete},
		{k.FilterAll, k.FilterCompleted, k.FilterPending, k.FilterNext},
		{k.Theme, k.Quit},
	}
}
