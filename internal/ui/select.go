package ui

import (
	"strings"

	"typeset/internal/article"
	"typeset/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// Select is a dropdown over one field's option set.
//
// Rows: 0 = title, 1 = collapsed control, 2.. = options while expanded.
// The selection only changes when an option is chosen (enter or click).
type Select struct {
	Title    string
	Field    article.Field
	set      article.OptionSet
	selected int
	cursor   int
	expanded bool
	focused  bool
	width    int
}

// NewSelect creates a collapsed select showing the field's first option.
func NewSelect(title string, field article.Field) *Select {
	return &Select{
		Title: title,
		Field: field,
		set:   field.Options(),
		width: 30,
	}
}

// SetWidth sets the width available to the control.
func (s *Select) SetWidth(w int) { s.width = w }

// Focus gives the select keyboard focus.
func (s *Select) Focus() { s.focused = true }

// Blur removes focus and collapses the dropdown.
func (s *Select) Blur() {
	s.focused = false
	s.expanded = false
}

// Expanded reports whether the option list is showing.
func (s *Select) Expanded() bool { return s.expanded }

// Selected returns the currently selected option.
func (s *Select) Selected() article.Option {
	return s.set.At(s.selected)
}

// SetSelected moves the selection to o; unknown options are ignored.
func (s *Select) SetSelected(o article.Option) {
	if i := s.set.Index(o); i >= 0 {
		s.selected = i
		s.cursor = i
	}
}

// Height returns the number of rows View produces.
func (s *Select) Height() int {
	if s.expanded {
		return 2 + s.set.Len()
	}
	return 2
}

// HandleKey processes a key while focused. It returns the chosen option and
// true when the selection changed, and consumed=false when the key is not its business.
func (s *Select) HandleKey(msg tea.KeyMsg) (chosen article.Option, changed, consumed bool) {
	if !s.expanded {
		switch msg.String() {
		case "enter", "down", "j":
			s.expanded = true
			s.cursor = s.selected
			return article.Option{}, false, true
		}
		return article.Option{}, false, false
	}
	switch msg.String() {
	case "up", "k":
		s.cursor = (s.cursor - 1 + s.set.Len()) % s.set.Len()
	case "down", "j":
		s.cursor = (s.cursor + 1) % s.set.Len()
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = s.set.Len() - 1
	case "enter":
		return s.choose(s.cursor)
	case "esc":
		s.expanded = false
	default:
		return article.Option{}, false, false
	}
	return article.Option{}, false, true
}

// HandleClick processes a press at row (relative to the select's first row).
func (s *Select) HandleClick(row int) (article.Option, bool) {
	switch {
	case row == 1:
		s.expanded = !s.expanded
		s.cursor = s.selected
	case s.expanded && row >= 2 && row < 2+s.set.Len():
		o, changed, _ := s.choose(row - 2)
		return o, changed
	}
	return article.Option{}, false
}

func (s *Select) choose(i int) (article.Option, bool, bool) {
	s.expanded = false
	changed := i != s.selected
	s.selected = i
	s.cursor = i
	return s.set.At(i), changed, true
}

// View renders the title, the control and, while expanded, the option list.
func (s *Select) View() string {
	var b strings.Builder
	b.WriteString(Styles.FieldTitle.Render(textutil.Truncate(s.Title, s.width)))
	b.WriteString("\n")

	arrow := "▾"
	if s.expanded {
		arrow = "▴"
	}
	sel := s.Selected()
	sw := swatch(sel.Value)
	labelWidth := s.width - 6
	if sw != "" {
		labelWidth -= 3
	}
	style := Styles.Control
	if s.focused {
		style = Styles.ControlFocus
	}
	b.WriteString(style.Render("[ ") + sw + style.Render(textutil.Fit(sel.Title, labelWidth)+" "+arrow+" ]"))

	if s.expanded {
		for i, o := range s.set.Options {
			mark := "  "
			if i == s.selected {
				mark = "✓ "
			}
			rs := Styles.Option
			if i == s.cursor {
				rs = Styles.OptionCursor
			}
			b.WriteString("\n")
			b.WriteString(rs.Render("  "+mark) + swatch(o.Value) + rs.Render(textutil.Truncate(o.Title, s.width-8)))
		}
	}
	return b.String()
}
