package viz

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/san-kum/algoviz/internal/playback"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Tab    key.Binding
	Back   key.Binding
	Quit   key.Binding
	Theme  key.Binding
	Random key.Binding

	Play   key.Binding
	Step   key.Binding
	Reset  key.Binding
	Slow   key.Binding
	Normal key.Binding
	Fast   key.Binding
	Edit   key.Binding
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch field"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Random: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "random"),
	),
	Play: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play"),
	),
	Step: key.NewBinding(
		key.WithKeys("n", "right", "l"),
		key.WithHelp("n/→", "step"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Slow: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "slow"),
	),
	Normal: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "normal"),
	),
	Fast: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "fast"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit input"),
	),
}

// ShortHelp and FullHelp make keyMap a help.KeyMap for the menu and input
// screens. The visualize screen draws its own control bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Tab, h.k.Random, h.k.Select, h.k.Back}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// syncControls enables the playback bindings the current view allows, so
// disabled controls neither match keys nor render as active.
func (k *keyMap) syncControls(v playback.View) {
	c := v.Controls()
	k.Play.SetEnabled(c.CanPlay || v.Playing)
	if v.Playing {
		k.Play.SetHelp("space", "pause")
	} else {
		k.Play.SetHelp("space", "play")
	}
	k.Step.SetEnabled(c.CanStep)
	k.Reset.SetEnabled(c.CanReset)
}

var speedKeys = map[playback.Speed]func(keyMap) key.Binding{
	playback.SpeedSlow:   func(k keyMap) key.Binding { return k.Slow },
	playback.SpeedNormal: func(k keyMap) key.Binding { return k.Normal },
	playback.SpeedFast:   func(k keyMap) key.Binding { return k.Fast },
}
