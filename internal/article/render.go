package article

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// PixelsPerColumn converts the CSS-style widths of the option sets to terminal columns.
const PixelsPerColumn = 14

// minColumns keeps very narrow terminals readable.
const minColumns = 20

// Columns returns the word-wrap width for the content width option,
// clamped to the space the terminal offers.
func Columns(width Option, termWidth int) int {
	cols := 80
	if px, ok := width.Pixels(); ok {
		cols = px / PixelsPerColumn
	}
	if termWidth > 0 && cols > termWidth-2 {
		cols = termWidth - 2
	}
	if cols < minColumns {
		cols = minColumns
	}
	return cols
}

// sizeTier maps font size options to 0 (regular), 1 (large), 2 (huge).
func sizeTier(o Option) int {
	px, ok := o.Pixels()
	switch {
	case !ok || px < 24:
		return 0
	case px < 32:
		return 1
	default:
		return 2
	}
}

// StyleConfig derives the markdown style for a configuration.
// Terminals cannot switch typefaces, so families map to emphasis:
// serif faces render italic, the display face bold.
func StyleConfig(st State) ansi.StyleConfig {
	fg := st.FontColor.Value
	bg := st.BackgroundColor.Value
	tier := sizeTier(st.FontSize)

	doc := ansi.StylePrimitive{
		Color:           &fg,
		BackgroundColor: &bg,
	}
	switch st.FontFamily.ClassName {
	case "cormorant-garamond", "merriweather":
		doc.Italic = boolPtr(true)
	case "days-one":
		doc.Bold = boolPtr(true)
	}

	margin := uint(1 + tier)
	heading := ansi.StyleBlock{
		StylePrimitive: ansi.StylePrimitive{
			Color:       &fg,
			Bold:        boolPtr(true),
			BlockSuffix: "\n",
		},
	}
	h1 := heading
	h1.StylePrimitive.Upper = boolPtr(tier > 0)
	if tier == 2 {
		h1.StylePrimitive.Prefix = "▌ "
	}

	paragraph := ansi.StyleBlock{}
	if tier > 0 {
		paragraph.StylePrimitive.BlockSuffix = "\n"
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: withBlockBreaks(doc),
			Margin:         &margin,
		},
		Paragraph: paragraph,
		Heading:   heading,
		H1:        h1,
		H2:        heading,
		H3:        heading,
		BlockQuote: ansi.StyleBlock{
			Indent:      uintPtr(1),
			IndentToken: stringPtr("│ "),
		},
		Emph:   ansi.StylePrimitive{Italic: boolPtr(true)},
		Strong: ansi.StylePrimitive{Bold: boolPtr(true)},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		HorizontalRule: ansi.StylePrimitive{
			Color:  &fg,
			Format: "\n────────\n",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "`", Suffix: "`"},
		},
	}
}

func withBlockBreaks(p ansi.StylePrimitive) ansi.StylePrimitive {
	p.BlockPrefix = "\n"
	p.BlockSuffix = "\n"
	return p
}

func boolPtr(b bool) *bool       { return &b }
func uintPtr(u uint) *uint       { return &u }
func stringPtr(s string) *string { return &s }

// Renderer turns documents into styled terminal text.
// The glamour renderer is rebuilt only when the configuration or width changes.
type Renderer struct {
	state State
	cols  int
	tr    *glamour.TermRenderer
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render renders doc under st for a terminal termWidth columns wide.
// The result is centred and padded with the background color.
func (r *Renderer) Render(doc Document, st State, termWidth int) (string, error) {
	cols := Columns(st.ContentWidth, termWidth)
	if r.tr == nil || r.state != st || r.cols != cols {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStyles(StyleConfig(st)),
			glamour.WithWordWrap(cols),
		)
		if err != nil {
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		r.tr, r.state, r.cols = tr, st, cols
	}
	out, err := r.tr.Render(doc.Markdown())
	if err != nil {
		return "", fmt.Errorf("render %q: %w", doc.Label(), err)
	}
	return Frame(out, st, termWidth), nil
}

// Frame centres rendered content horizontally and fills the gutters with the
// configured background color.
func Frame(content string, st State, termWidth int) string {
	if termWidth <= 0 {
		return content
	}
	bg := lipgloss.Color(st.BackgroundColor.Value)
	return lipgloss.NewStyle().
		Background(bg).
		Render(lipgloss.PlaceHorizontal(termWidth, lipgloss.Center, content,
			lipgloss.WithWhitespaceBackground(bg)))
}
