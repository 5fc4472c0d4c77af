// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{
				Label:       "Converter",
				Description: "decimal to binary, octal and hex with division steps",
				View:        messages.ViewConverter,
			},
			{
				Label:       "Calculator",
				Description: "add and subtract in any base",
				View:        messages.ViewCalculator,
			},
			{
				Label:       "Settings",
				Description: "default base, steps and theme",
				View:        messages.ViewSettings,
			},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.choose()

		case "q":
			return v, tea.Quit
		}

		// Number keys pick an item directly.
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && int(r[0]-'1') < len(v.items) {
			v.selected = int(r[0] - '1')
			return v, v.choose()
		}
	}

	return v, nil
}

func (v *View) choose() tea.Cmd {
	item := v.items[v.selected]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("radix"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Number Base Converter & Calculator"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		num := fmt.Sprintf("%d ", i+1)
		if i == v.selected {
			b.WriteString("> " + num + v.styles.Subtitle.Render(item.Label))
			if item.Description != "" {
				b.WriteString("  " + v.styles.Muted.Render(item.Description))
			}
		} else {
			b.WriteString("  " + num + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [1-5/Enter] Select  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
