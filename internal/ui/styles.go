package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the panel chrome. The article itself is colored by the
// applied configuration, not by these.
const (
	ColorAccent    = "86"  // Cyan/green - headings, focused controls
	ColorHighlight = "205" // Magenta - panel border, cursor
	ColorMuted     = "241" // Gray - titles of controls, hints
	ColorText      = "252" // Light gray - option labels
	ColorPanelBg   = "235" // Near black - panel background
	ColorDanger    = "196" // Red - errors in the status line
)

// Styles contains shared style definitions used by the panel and the app chrome.
var Styles = struct {
	Panel         lipgloss.Style // Slide-out panel box
	Heading       lipgloss.Style // Panel heading
	FieldTitle    lipgloss.Style // Title above a select or radio group
	Control       lipgloss.Style // Collapsed select / radio group line
	ControlFocus  lipgloss.Style // Same, when focused
	Option        lipgloss.Style // Option row in an expanded select
	OptionCursor  lipgloss.Style // Option row under the cursor
	Separator     lipgloss.Style
	ButtonClear   lipgloss.Style
	ButtonApply   lipgloss.Style
	ButtonFocus   lipgloss.Style
	Arrow         lipgloss.Style // Trigger button
	ArrowOpen     lipgloss.Style
	Status        lipgloss.Style // Bottom status line
	StatusError   lipgloss.Style
	Hint          lipgloss.Style
}{
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Background(lipgloss.Color(ColorPanelBg)).
		Padding(1, 2),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	FieldTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Control: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ControlFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Option: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	OptionCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	ButtonClear: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	ButtonApply: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 1),
	ButtonFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPanelBg)).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Arrow: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ArrowOpen: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// swatch renders a two-cell color sample for hex color values.
func swatch(value string) string {
	if len(value) != 7 || value[0] != '#' {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value)).Render("██") + " "
}
