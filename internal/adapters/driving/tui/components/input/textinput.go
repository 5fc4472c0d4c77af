// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

// maxDecimalDigits is the length of the largest int64.
const maxDecimalDigits = 19

// NumberInput wraps a bubbles textinput that only accepts decimal digits.
type NumberInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewNumberInput creates a new decimal number input component.
func NewNumberInput(s *styles.Styles, label string) *NumberInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a decimal number..."
	ti.Focus()
	ti.CharLimit = maxDecimalDigits
	ti.Width = 30

	return &NumberInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     30,
	}
}

// Init initialises the number input.
func (n *NumberInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
// Typed runes other than 0-9 are dropped.
func (n *NumberInput) Update(msg tea.Msg) (*NumberInput, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyRunes {
		digits := make([]rune, 0, len(km.Runes))
		for _, r := range km.Runes {
			if r >= '0' && r <= '9' {
				digits = append(digits, r)
			}
		}
		if len(digits) == 0 {
			return n, nil
		}
		km.Runes = digits
		msg = km
	}

	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the number input.
func (n *NumberInput) View() string {
	label := n.styles.Title.Render(n.label)
	field := n.styles.InputField.Render(n.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (n *NumberInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NumberInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (n *NumberInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NumberInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NumberInput) Focused() bool {
	return n.textinput.Focused()
}

// SetWidth sets the width of the input.
func (n *NumberInput) SetWidth(width int) {
	n.width = width
	// Account for label and padding
	inputWidth := width - lipgloss.Width(n.label) - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	n.textinput.Width = inputWidth
}

// Width returns the current width.
func (n *NumberInput) Width() int {
	return n.width
}

// Reset clears the input.
func (n *NumberInput) Reset() {
	n.textinput.Reset()
}
