package ui

import (
	"typeset/internal/article"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ArticleView shows the rendered article in a scrollable viewport.
// It re-renders whenever the document, the applied configuration or the width changes.
type ArticleView struct {
	viewport viewport.Model
	renderer *article.Renderer
	Doc      article.Document
	State    article.State
	Err      error // last render error, shown by the app's status line
	width    int
}

// Ensure ArticleView implements View.
var _ View = (*ArticleView)(nil)

// NewArticleView creates a view for doc styled with st.
func NewArticleView(doc article.Document, st article.State) *ArticleView {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &ArticleView{
		viewport: vp,
		renderer: article.NewRenderer(),
		Doc:      doc,
		State:    st,
	}
}

// SetSize resizes the viewport.
func (v *ArticleView) SetSize(width, height int) {
	v.width = width
	v.viewport.Width = width
	v.viewport.Height = height
	v.rerender()
}

// SetDocument swaps in a new document, keeping the scroll position where possible.
func (v *ArticleView) SetDocument(doc article.Document) {
	v.Doc = doc
	v.rerender()
}

// SetState applies a configuration.
func (v *ArticleView) SetState(st article.State) {
	v.State = st
	v.rerender()
}

func (v *ArticleView) rerender() {
	if v.width <= 0 {
		return
	}
	out, err := v.renderer.Render(v.Doc, v.State, v.width)
	v.Err = err
	if err != nil {
		return
	}
	offset := v.viewport.YOffset
	v.viewport.SetContent(out)
	v.viewport.SetYOffset(offset)
}

// Init implements View.
func (v *ArticleView) Init() tea.Cmd {
	return nil
}

// Update implements View. Scrolling keys and the mouse wheel move the viewport.
func (v *ArticleView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ArticleView) View() string {
	return v.viewport.View()
}

// ScrollPercent reports how far the reader has scrolled.
func (v *ArticleView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}
