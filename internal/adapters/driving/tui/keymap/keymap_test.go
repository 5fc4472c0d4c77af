package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"add", km.Add, []string{"+"}},
		{"subtract", km.Subtract, []string{"-"}},
		{"equals", km.Equals, []string{"=", "enter"}},
		{"backspace", km.Backspace, []string{"backspace"}},
		{"clear", km.Clear, []string{"delete", "ctrl+l"}},
		{"next base", km.NextBase, []string{"tab"}},
		{"prev base", km.PrevBase, []string{"shift+tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_NoHexDigitBindings(t *testing.T) {
	km := DefaultKeyMap()

	// Keys used as calculator digits must not trigger calculator actions.
	actions := []key.Binding{km.Add, km.Subtract, km.Equals, km.Backspace, km.Clear, km.NextBase, km.PrevBase}
	for _, digit := range []string{"0", "1", "9", "a", "c", "f", "A", "C", "F"} {
		for _, b := range actions {
			assert.False(t, Matches(digit, b), "%q is bound to %q", digit, b.Help().Desc)
		}
	}
}

func TestKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.CalculatorHelp(), km.Clear)
	assert.Contains(t, km.ConverterHelp(), km.Convert)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Quit))
}
