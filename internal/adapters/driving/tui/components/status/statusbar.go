// Package status provides the status line shown under the converter and
// calculator views.
package status

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

// Bar shows the last error or the current mode on the left and key hints
// on the right.
type Bar struct {
	styles *styles.Styles
	hints  []key.Binding
	err    error
	mode   string
	width  int
}

// NewBar creates a status bar showing hints.
func NewBar(s *styles.Styles, hints ...key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s, hints: hints, width: 80}
}

// View renders the bar at its configured width.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderHints()

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) renderLeft() string {
	switch {
	case s.err != nil:
		return s.styles.Error.Render("Error: " + s.err.Error())
	case s.mode != "":
		return s.styles.Normal.Render(s.mode)
	default:
		return s.styles.Muted.Render("Ready")
	}
}

func (s *Bar) renderHints() string {
	parts := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return s.styles.Muted.Render(strings.Join(parts, " | "))
}

// SetError shows err until the next Clear. A nil err clears the bar.
func (s *Bar) SetError(err error) {
	s.err = err
}

// Err returns the error on display, if any.
func (s *Bar) Err() error {
	return s.err
}

// SetMode sets the text shown on the left when there is no error,
// for example the active base and keypad state.
func (s *Bar) SetMode(mode string) {
	s.mode = mode
}

// SetHints replaces the key hints.
func (s *Bar) SetHints(hints ...key.Binding) {
	s.hints = hints
}

// SetWidth sets the rendered width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the rendered width.
func (s *Bar) Width() int {
	return s.width
}

// Clear removes any error.
func (s *Bar) Clear() {
	s.err = nil
}
