package article

import "fmt"

// Field identifies one configurable aspect of the article.
type Field int

const (
	FieldFontFamily Field = iota
	FieldFontSize
	FieldFontColor
	FieldBackgroundColor
	FieldContentWidth
)

// Fields lists every field in panel order.
var Fields = []Field{
	FieldFontFamily,
	FieldFontSize,
	FieldFontColor,
	FieldBackgroundColor,
	FieldContentWidth,
}

func (f Field) String() string {
	switch f {
	case FieldFontFamily:
		return "FontFamily"
	case FieldFontSize:
		return "FontSize"
	case FieldFontColor:
		return "FontColor"
	case FieldBackgroundColor:
		return "BackgroundColor"
	case FieldContentWidth:
		return "ContentWidth"
	default:
		return "Unknown"
	}
}

// Options returns the option set registered for the field.
func (f Field) Options() OptionSet {
	switch f {
	case FieldFontFamily:
		return FontFamilyOptions
	case FieldFontSize:
		return FontSizeOptions
	case FieldFontColor:
		return FontColors
	case FieldBackgroundColor:
		return BackgroundColors
	case FieldContentWidth:
		return ContentWidths
	}
	return OptionSet{}
}

// State is the full article configuration, one selected option per field.
// It is a value type; With returns a modified copy.
type State struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

// Get returns the option selected for f.
func (s State) Get(f Field) Option {
	switch f {
	case FieldFontFamily:
		return s.FontFamily
	case FieldFontSize:
		return s.FontSize
	case FieldFontColor:
		return s.FontColor
	case FieldBackgroundColor:
		return s.BackgroundColor
	case FieldContentWidth:
		return s.ContentWidth
	}
	return Option{}
}

// With returns a copy of s in which f holds o. The receiver is not modified.
// o must belong to f's option set.
func (s State) With(f Field, o Option) (State, error) {
	if !f.Options().Contains(o) {
		return s, fmt.Errorf("%s %q: %w", f, o.Value, ErrOptionNotInSet)
	}
	next := s
	switch f {
	case FieldFontFamily:
		next.FontFamily = o
	case FieldFontSize:
		next.FontSize = o
	case FieldFontColor:
		next.FontColor = o
	case FieldBackgroundColor:
		next.BackgroundColor = o
	case FieldContentWidth:
		next.ContentWidth = o
	}
	return next, nil
}

// Validate checks that every field holds a member of its option set.
func (s State) Validate() error {
	for _, f := range Fields {
		o := s.Get(f)
		if !f.Options().Contains(o) {
			return fmt.Errorf("%s %q: %w", f, o.Value, ErrOptionNotInSet)
		}
	}
	return nil
}

// Summary is a compact one-line description, used in logs and the status line.
func (s State) Summary() string {
	return fmt.Sprintf("%s %s, %s on %s, %s",
		s.FontFamily.Title, s.FontSize.Title, s.FontColor.Title, s.BackgroundColor.Title, s.ContentWidth.Title)
}
