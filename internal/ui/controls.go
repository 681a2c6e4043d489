package ui

import (
	"strings"

	"typeset/internal/ui/textutil"
)

// ButtonKind selects the look of a Button.
type ButtonKind int

const (
	ButtonClear ButtonKind = iota
	ButtonApply
)

// Button is an action control at the bottom of the panel.
type Button struct {
	Title   string
	Kind    ButtonKind
	focused bool
}

func (b *Button) Focus() { b.focused = true }
func (b *Button) Blur()  { b.focused = false }

// label is the unstyled text; styles add one column of padding on each side.
func (b *Button) label() string {
	return "[ " + b.Title + " ]"
}

// Width is the rendered width in columns.
func (b *Button) Width() int {
	return textutil.Width(b.label()) + 2
}

func (b *Button) View() string {
	switch {
	case b.focused:
		return Styles.ButtonFocus.Render(b.label())
	case b.Kind == ButtonApply:
		return Styles.ButtonApply.Render(b.label())
	default:
		return Styles.ButtonClear.Render(b.label())
	}
}

// Heading renders the panel title in upper case.
func Heading(text string, width int) string {
	return Styles.Heading.Render(textutil.Truncate(strings.ToUpper(text), width))
}

// Separator renders a horizontal rule across width columns.
func Separator(width int) string {
	if width <= 0 {
		return ""
	}
	return Styles.Separator.Render(strings.Repeat("─", width))
}
