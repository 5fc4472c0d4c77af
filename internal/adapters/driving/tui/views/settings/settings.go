// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Item identifies an editable setting.
type Item int

const (
	ItemDefaultBase Item = iota
	ItemShowSteps
	ItemTheme
)

// itemCount is the number of editable settings.
const itemCount = 3

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error

	selected Item

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < itemCount-1 {
			v.selected++
		}
	case "enter", " ", "right", "l":
		return v, v.change(true)
	case "left", "h":
		return v, v.change(false)
	}
	return v, nil
}

// change advances the selected setting and saves it.
func (v *View) change(forward bool) tea.Cmd {
	if v.settings == nil || v.settingsService == nil {
		return nil
	}
	current := *v.settings
	svc := v.settingsService

	switch v.selected {
	case ItemDefaultBase:
		base := current.Calculator.DefaultBase.Next()
		if !forward {
			base = current.Calculator.DefaultBase.Prev()
		}
		return func() tea.Msg {
			return messages.SettingsSaved{Err: svc.SetDefaultBase(base)}
		}
	case ItemShowSteps:
		show := !current.Display.ShowSteps
		return func() tea.Msg {
			return messages.SettingsSaved{Err: svc.SetShowSteps(show)}
		}
	case ItemTheme:
		theme := domain.ThemeMono
		if current.Display.Theme == domain.ThemeMono {
			theme = domain.ThemeDefault
		}
		return func() tea.Msg {
			return messages.SettingsSaved{Err: svc.SetTheme(theme)}
		}
	}
	return nil
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Default base", v.settings.Calculator.DefaultBase.String() + " (" + v.settings.Calculator.DefaultBase.Description() + ")"},
		{"Show steps", onOff(v.settings.Display.ShowSteps)},
		{"Theme", v.settings.Display.Theme.String()},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-14s %s", row.label, row.value)
		if Item(i) == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [enter/←/→] change  [esc] back"))

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Selected returns the highlighted item.
func (v *View) Selected() Item {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.selected = ItemDefaultBase
	v.err = nil
}
