package ui

import (
	"strings"

	"typeset/internal/article"
	"typeset/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// radioGap is the number of columns between radio items.
const radioGap = 2

// RadioGroup is a single-select row of options. Moving the selection applies
// it to the pending configuration immediately, like a native radio input.
//
// Rows: 0 = title, 1 = the options.
type RadioGroup struct {
	Title    string
	Name     string
	Field    article.Field
	set      article.OptionSet
	selected int
	focused  bool
}

// NewRadioGroup creates a radio group over the field's option set.
func NewRadioGroup(title, name string, field article.Field) *RadioGroup {
	return &RadioGroup{
		Title: title,
		Name:  name,
		Field: field,
		set:   field.Options(),
	}
}

// Focus gives the group keyboard focus.
func (r *RadioGroup) Focus() { r.focused = true }

// Blur removes focus.
func (r *RadioGroup) Blur() { r.focused = false }

// Selected returns the currently selected option.
func (r *RadioGroup) Selected() article.Option {
	return r.set.At(r.selected)
}

// SetSelected moves the selection to o; unknown options are ignored.
func (r *RadioGroup) SetSelected(o article.Option) {
	if i := r.set.Index(o); i >= 0 {
		r.selected = i
	}
}

// Height returns the number of rows View produces.
func (r *RadioGroup) Height() int { return 2 }

// HandleKey moves the selection with left/right. Selection wraps.
func (r *RadioGroup) HandleKey(msg tea.KeyMsg) (chosen article.Option, changed, consumed bool) {
	switch msg.String() {
	case "left", "h":
		return r.choose(r.selected - 1)
	case "right", "l":
		return r.choose(r.selected + 1)
	}
	return article.Option{}, false, false
}

// HandleClick selects the item under (row, col), relative to the group's origin.
func (r *RadioGroup) HandleClick(row, col int) (article.Option, bool) {
	if row != 1 {
		return article.Option{}, false
	}
	for i, span := range textutil.Spans(r.labels(), radioGap) {
		if span.Contains(col) {
			o, changed, _ := r.choose(i)
			return o, changed
		}
	}
	return article.Option{}, false
}

func (r *RadioGroup) choose(i int) (article.Option, bool, bool) {
	n := r.set.Len()
	i = ((i % n) + n) % n
	changed := i != r.selected
	r.selected = i
	return r.set.At(i), changed, true
}

// labels are the plain item texts; View styles them without changing widths.
func (r *RadioGroup) labels() []string {
	out := make([]string, r.set.Len())
	for i, o := range r.set.Options {
		mark := "( )"
		if i == r.selected {
			mark = "(•)"
		}
		out[i] = mark + " " + o.Title
	}
	return out
}

// View renders the title and the option row.
func (r *RadioGroup) View() string {
	labels := r.labels()
	styled := make([]string, len(labels))
	for i, l := range labels {
		st := Styles.Control
		if i == r.selected && r.focused {
			st = Styles.ControlFocus
		} else if i == r.selected {
			st = Styles.Heading
		}
		styled[i] = st.Render(l)
	}
	return Styles.FieldTitle.Render(r.Title) + "\n" + strings.Join(styled, strings.Repeat(" ", radioGap))
}
