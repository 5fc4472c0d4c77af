package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/views/converter"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	keymap *keymap.KeyMap

	// styles is shared by every view; theme changes replace it in place.
	styles *styles.Styles

	menuView       *menu.View
	converterView  *converter.View
	calculatorView *calculator.View
	settingsView   *settings.View

	currentView messages.ViewType

	// settings holds the last applied settings.
	settings *domain.AppSettings

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		keymap:         keymap.DefaultKeyMap(),
		styles:         s,
		menuView:       menu.NewView(s),
		converterView:  converter.NewView(s, ports.Converter),
		calculatorView: calculator.NewView(s, ports.Keypad),
		settingsView:   settings.NewView(s, ports.Settings),
		currentView:    messages.ViewMenu,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("radix - number base calculator"),
		a.loadSettings(),
	)
}

// loadSettings reads the settings for the app as a whole.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		s, err := svc.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			if keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewConverter:
			a.converterView, cmd = a.converterView.Update(msg)
		case messages.ViewCalculator:
			a.calculatorView, cmd = a.calculatorView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || msg.String() == "q" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		logger.Debug("tui: view %s", msg.View)
		switch msg.View {
		case messages.ViewConverter:
			a.converterView.Reset()
			return a, a.converterView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewCalculator, messages.ViewHelp:
		}
		return a, nil

	case messages.ConversionCompleted:
		a.err = msg.Err
		a.converterView, cmd = a.converterView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("tui: load settings: %v", msg.Err)
		} else if msg.Settings != nil {
			a.applySettings(msg.Settings)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsChanged:
		logger.Debug("tui: config changed on disk")
		return a, a.loadSettings()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a, nil
}

// applySettings updates the theme, step panels and the calculator's base.
// The calculator only moves to a new default base while it is untouched.
func (a *App) applySettings(s *domain.AppSettings) {
	prev := a.settings
	a.settings = s

	if prev == nil || prev.Display.Theme != s.Display.Theme {
		*a.styles = *styles.ForTheme(s.Display.Theme)
	}
	a.converterView.SetShowSteps(s.Display.ShowSteps)
	a.calculatorView.SetShowSteps(s.Display.ShowSteps)

	snap := a.calculatorView.Snapshot()
	if snap.State == domain.StateIdle && snap.Display == "0" && snap.Base != s.Calculator.DefaultBase {
		a.calculatorView.Reset(s.Calculator.DefaultBase)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewConverter:
		body = a.converterView.View()
	case messages.ViewCalculator:
		body = a.calculatorView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	if a.err != nil {
		body += "\n" + a.styles.Error.Render("! "+a.err.Error())
	}
	return body
}

// viewHelp renders every key binding.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, row := range a.keymap.FullHelp() {
		for _, binding := range row {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString("In the calculator, type digits valid for the active base.\n")
	b.WriteString("Hex digits A-F may be typed in either case.\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))

	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Settings returns the last applied settings.
func (a *App) Settings() *domain.AppSettings {
	return a.settings
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.converterView.SetDimensions(width, height)
	a.calculatorView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
