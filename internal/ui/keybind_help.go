package ui

import (
	"typeset/internal/panel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// After a submenu key (e.g. "SPC p") it shows that submenu's keys instead.
func RenderKeybindHelp(handler *KeyHandler, state panel.Visibility) string {
	if handler == nil {
		return ""
	}
	bindings := NewKeyMap(handler, state).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint

	prefix := handler.LeaderSeq
	if seq := handler.CurrentSeq(); seq != "" {
		prefix = seq
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(prefix) + " " + h.ShortHelpView(bindings))
}
