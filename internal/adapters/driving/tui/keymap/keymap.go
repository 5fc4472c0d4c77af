// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Convert converts the entered decimal number.
	Convert key.Binding

	// Add presses the + operator.
	Add key.Binding

	// Subtract presses the - operator.
	Subtract key.Binding

	// Equals evaluates the pending calculation.
	Equals key.Binding

	// Backspace deletes the last digit.
	Backspace key.Binding

	// Clear resets the calculator.
	Clear key.Binding

	// NextBase selects the next number base.
	NextBase key.Binding

	// PrevBase selects the previous number base.
	PrevBase key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
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
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert"),
		),
		Add: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add"),
		),
		Subtract: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "subtract"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=", "equals"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete", "ctrl+l"),
			key.WithHelp("del", "clear"),
		),
		NextBase: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next base"),
		),
		PrevBase: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev base"),
		),
	}
}

// CalculatorHelp returns keybindings for the calculator view.
func (k *KeyMap) CalculatorHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Backspace, k.Clear, k.NextBase, k.Back}
}

// ConverterHelp returns keybindings for the converter view.
func (k *KeyMap) ConverterHelp() []key.Binding {
	return []key.Binding{k.Convert, k.NextBase, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Add, k.Subtract, k.Equals, k.Backspace, k.Clear},
		{k.NextBase, k.PrevBase, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
