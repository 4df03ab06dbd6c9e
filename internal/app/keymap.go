package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the keyboard bindings: the two gesture buttons plus the
// simulated sensor controls.
type keyMap struct {
	Lap      key.Binding // start/lap gesture
	Back     key.Binding // confirm/back gesture
	ElevUp   key.Binding
	ElevDown key.Binding
	FullUp   key.Binding
	FullDown key.Binding
	Landing  key.Binding // toggle the landing switch
	Query    key.Binding // momentary time-query button
	Mute     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/lap"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "b"),
			key.WithHelp("bksp", "back/reset"),
		),
		ElevUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "elevator up"),
		),
		ElevDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "elevator down"),
		),
		FullUp: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "elevator full up"),
		),
		FullDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "elevator full down"),
		),
		Landing: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "landing switch"),
		),
		Query: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "remaining time"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
