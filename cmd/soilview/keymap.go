package main

import "github.com/charmbracelet/bubbles/key"

// keyMap soilview 的按键绑定
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Hoe      key.Binding
	Water    key.Binding
	Seed     key.Binding
	Harvest  key.Binding
	Use      key.Binding
	NextSeed key.Binding
	Grow     key.Binding
	Auto     key.Binding
	NewDay   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Use, k.NextSeed, k.Grow, k.NewDay, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Hoe, k.Water, k.Seed, k.Harvest},
		{k.Use, k.NextSeed, k.Grow, k.Auto},
		{k.NewDay, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Hoe: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "hoe"),
		),
		Water: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "water"),
		),
		Seed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "seed"),
		),
		Harvest: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "harvest"),
		),
		Use: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "use tool"),
		),
		NextSeed: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next seed"),
		),
		Grow: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grow tick"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto grow"),
		),
		NewDay: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new day"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
