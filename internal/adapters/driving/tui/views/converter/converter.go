// Package converter provides the decimal conversion view for the TUI.
package converter

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// View converts a decimal number into every base and shows the division
// steps for one base at a time.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	converter driving.ConverterService
	input     *input.NumberInput
	status    *status.Bar

	result    *domain.ConversionSet
	stepsBase domain.Base
	showSteps bool
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new converter view.
func NewView(s *styles.Styles, converter driving.ConverterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:    s,
		keymap:    km,
		converter: converter,
		input:     input.NewNumberInput(s, "Decimal: "),
		status:    status.NewBar(s, km.ConverterHelp()...),
		stepsBase: domain.BaseBinary,
		showSteps: true,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Reset clears the input and any previous result.
func (v *View) Reset() {
	v.input.Reset()
	v.result = nil
	v.err = nil
	v.status.Clear()
}

// SetShowSteps toggles the division trace panel.
func (v *View) SetShowSteps(show bool) {
	v.showSteps = show
}

// Update handles messages for the converter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ConversionCompleted:
		v.err = msg.Err
		if msg.Err == nil {
			v.result = msg.Set
		}
		v.status.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(msg.String(), v.keymap.Convert):
			return v, v.convert(v.input.Value())
		case keymap.Matches(msg.String(), v.keymap.NextBase):
			v.stepsBase = v.stepsBase.Next()
			return v, nil
		case keymap.Matches(msg.String(), v.keymap.PrevBase):
			v.stepsBase = v.stepsBase.Prev()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// convert returns a command that converts text into every base.
func (v *View) convert(text string) tea.Cmd {
	return func() tea.Msg {
		if v.converter == nil {
			return messages.ConversionCompleted{Err: fmt.Errorf("converter service not available")}
		}
		value, err := v.converter.ToDecimal(text, domain.BaseDecimal)
		if err != nil {
			return messages.ConversionCompleted{Err: err}
		}
		set, err := v.converter.ConvertAll(value)
		return messages.ConversionCompleted{Set: set, Err: err}
	}
}

// View renders the converter.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Converter"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.result != nil {
		b.WriteString(v.renderResults())
		b.WriteString("\n")
		if v.showSteps {
			b.WriteString(v.renderSteps())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderResults() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Results"))
	b.WriteString("\n")
	for _, base := range domain.AllBases() {
		label := fmt.Sprintf("%-12s", base.Description()+":")
		b.WriteString("  " + v.styles.Muted.Render(label) + v.styles.Normal.Render(v.result.In(base).Representation))
		b.WriteString("\n")
	}
	return v.styles.Border.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (v *View) renderSteps() string {
	tabs := make([]string, 0, len(domain.AllBases()))
	for _, base := range domain.AllBases() {
		if base == v.stepsBase {
			tabs = append(tabs, v.styles.ActiveTab.Render(base.String()))
		} else {
			tabs = append(tabs, v.styles.Tab.Render(base.String()))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Decimal to %s", v.stepsBase.Description())))
	b.WriteString("\n")
	for _, line := range v.result.In(v.stepsBase).StepLines() {
		b.WriteString("  " + v.styles.Normal.Render(line) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.status.SetWidth(width)
}

// Result returns the most recent conversion, or nil.
func (v *View) Result() *domain.ConversionSet {
	return v.result
}

// StepsBase returns the base whose trace is shown.
func (v *View) StepsBase() domain.Base {
	return v.stepsBase
}

// Err returns the last conversion error.
func (v *View) Err() error {
	return v.err
}
