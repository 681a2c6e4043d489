package ui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// ArrowButton is the trigger that opens and closes the panel.
// It points right while the panel is closed and left while it is open.
type ArrowButton struct {
	IsOpen bool
}

// Ensure ArrowButton implements View.
var _ View = (*ArrowButton)(nil)

// Init implements View.
func (a *ArrowButton) Init() tea.Cmd { return nil }

// Update implements View. The trigger is stateless; the app decides when it is clicked.
func (a *ArrowButton) Update(tea.Msg) (View, tea.Cmd) { return a, nil }

// View implements View.
func (a *ArrowButton) View() string {
	if a.IsOpen {
		return Styles.ArrowOpen.Render("‹")
	}
	return Styles.Arrow.Render("›")
}

// Size returns the rendered width and height.
func (a *ArrowButton) Size() (w, h int) {
	v := a.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}
