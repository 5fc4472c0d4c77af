package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// chosenView runs cmd and returns the view it switches to.
func chosenView(t *testing.T, cmd tea.Cmd) messages.ViewType {
	t.Helper()
	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok, "expected ViewChanged")
	return changed.View
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 5)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	assert.NotNil(t, view.styles)
}

func TestView_Items(t *testing.T) {
	view := NewView(nil)

	want := []struct {
		label string
		view  messages.ViewType
		quit  bool
	}{
		{"Converter", messages.ViewConverter, false},
		{"Calculator", messages.ViewCalculator, false},
		{"Settings", messages.ViewSettings, false},
		{"Help", messages.ViewHelp, false},
		{"Quit", messages.ViewMenu, true},
	}

	require.Len(t, view.items, len(want))
	for i, w := range want {
		assert.Equal(t, w.label, view.items[i].Label)
		assert.Equal(t, w.quit, view.items[i].Quit)
		if !w.quit {
			assert.Equal(t, w.view, view.items[i].View)
		}
	}
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Same(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  []tea.KeyMsg
		want  int
	}{
		{"down arrow", 0, []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"j twice", 0, []tea.KeyMsg{runeKey('j'), runeKey('j')}, 2},
		{"stops at last", 3, []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j')}, 4},
		{"up arrow", 3, []tea.KeyMsg{{Type: tea.KeyUp}}, 2},
		{"k stops at first", 1, []tea.KeyMsg{runeKey('k'), runeKey('k')}, 0},
		{"unbound key", 2, []tea.KeyMsg{runeKey('x')}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.start

			for _, k := range tt.keys {
				view.Update(k)
			}

			assert.Equal(t, tt.want, view.Selected())
		})
	}
}

func TestView_Update_EnterSwitchesView(t *testing.T) {
	tests := []struct {
		selected int
		want     messages.ViewType
	}{
		{0, messages.ViewConverter},
		{1, messages.ViewCalculator},
		{2, messages.ViewSettings},
		{3, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.selected

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.want, chosenView(t, cmd))
		})
	}
}

func TestView_Update_NumberKeySelects(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(runeKey('2'))

	assert.Equal(t, 1, view.Selected())
	assert.Equal(t, messages.ViewCalculator, chosenView(t, cmd))
}

func TestView_Update_NumberKeyOutOfRange(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(runeKey('9'))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"number key", runeKey('5')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(nil)

			_, cmd := view.Update(tt.key)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestView_Update_EnterOnQuit(t *testing.T) {
	view := NewView(nil)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Equal(t, "Initialising...", view.View())
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "radix")
	assert.Contains(t, output, "Number Base Converter")
	for _, label := range []string{"1 ", "Converter", "2 ", "Calculator", "Settings", "Help", "5 ", "Quit"} {
		assert.Contains(t, output, label)
	}
	assert.Contains(t, output, "> 1 ")
	assert.Contains(t, output, "[?] Help")
}

func TestView_View_ShowsSelectedDescription(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	output := view.View()
	assert.Contains(t, output, "division steps")
	assert.NotContains(t, output, "add and subtract")

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	output = view.View()
	assert.Contains(t, output, "add and subtract in any base")
	assert.NotContains(t, output, "division steps")
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil)

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}
