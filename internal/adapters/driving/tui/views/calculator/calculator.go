// Package calculator provides the keypad calculator view for the TUI.
package calculator

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// displayWidth is the inner width of the calculator display.
const displayWidth = 32

// View drives a Keypad from key presses and renders its state.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	keypad driving.Keypad
	status *status.Bar

	showSteps bool

	width  int
	height int
	ready  bool
}

// NewView creates a calculator view around keypad.
func NewView(s *styles.Styles, keypad driving.Keypad) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:    s,
		keymap:    km,
		keypad:    keypad,
		status:    status.NewBar(s, km.CalculatorHelp()...),
		showSteps: true,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset clears the keypad and selects base.
func (v *View) Reset(base domain.Base) {
	v.keypad.Reset(base)
	v.status.Clear()
}

// SetShowSteps toggles the step-by-step panel.
func (v *View) SetShowSteps(show bool) {
	v.showSteps = show
}

// Snapshot returns the keypad state.
func (v *View) Snapshot() domain.KeypadSnapshot {
	return v.keypad.Snapshot()
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Back) {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		input, ok := v.inputFor(msg)
		if !ok {
			return v, nil
		}
		err := v.keypad.Press(input)
		v.status.SetError(err)
		logger.Debug("keypad: %s -> %s", input, v.keypad.Snapshot().State)
	}

	return v, nil
}

// inputFor maps a key press to a keypad input.
func (v *View) inputFor(msg tea.KeyMsg) (domain.KeypadInput, bool) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Add):
		return domain.OperatorInput(domain.OperatorAdd), true
	case keymap.Matches(k, v.keymap.Subtract):
		return domain.OperatorInput(domain.OperatorSubtract), true
	case keymap.Matches(k, v.keymap.Equals):
		return domain.EqualsInput(), true
	case keymap.Matches(k, v.keymap.Backspace):
		return domain.BackspaceInput(), true
	case keymap.Matches(k, v.keymap.Clear):
		return domain.ClearInput(), true
	case keymap.Matches(k, v.keymap.NextBase):
		return domain.BaseInput(v.keypad.Snapshot().Base.Next()), true
	case keymap.Matches(k, v.keymap.PrevBase):
		return domain.BaseInput(v.keypad.Snapshot().Base.Prev()), true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return domain.DigitInput(msg.Runes[0]), true
	}
	return domain.KeypadInput{}, false
}

// View renders the calculator.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	snap := v.keypad.Snapshot()
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Calculator"))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs(snap.Base))
	b.WriteString("\n")

	if line := snap.PendingLine(); line != "" {
		b.WriteString(v.styles.Muted.Render("Current calculation: " + line))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Display.Width(displayWidth).Render(snap.Display))
	b.WriteString("\n")
	b.WriteString(v.renderKeypad(snap.Base))
	b.WriteString("\n")

	if v.showSteps && snap.Calculation != nil {
		b.WriteString("\n")
		b.WriteString(v.renderSteps(snap.Calculation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	v.status.SetMode(snap.Base.String() + "  " + snap.State.String())
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderTabs(active domain.Base) string {
	tabs := make([]string, 0, len(domain.AllBases()))
	for _, base := range domain.AllBases() {
		if base == active {
			tabs = append(tabs, v.styles.ActiveTab.Render(base.String()))
		} else {
			tabs = append(tabs, v.styles.Tab.Render(base.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderKeypad(base domain.Base) string {
	digits := strings.Join(strings.Split(base.Digits(), ""), " ")
	return v.styles.Muted.Render("Digits: ") + v.styles.Key.Render(digits) +
		v.styles.Muted.Render("   Ops: ") + v.styles.Key.Render("+ - =")
}

func (v *View) renderSteps(calc *domain.Calculation) string {
	step := calc.Step
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Step-by-step"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Operation in %s: %s\n", step.Base.Description(), step.Explanation))
	b.WriteString("\nConvert to decimal:\n")
	for _, line := range step.OperandLines() {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\nCalculate in decimal:\n")
	b.WriteString("  " + step.DecimalLine() + "\n")
	b.WriteString("\nResult in all number systems:\n")
	for _, base := range domain.AllBases() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", base.Description()+":", calc.Result.In(base)))
	}

	return v.styles.Border.Render(strings.TrimSuffix(b.String(), "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.status.SetWidth(width)
}
