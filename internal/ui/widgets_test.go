package ui

import (
	"strings"
	"testing"

	"typeset/internal/article"

	"github.com/charmbracelet/x/ansi"
)

func TestSelect_KeyboardNavigation(t *testing.T) {
	s := NewSelect("Font color", article.FieldFontColor)

	if _, _, consumed := s.HandleKey(keyMsg("x")); consumed {
		t.Error("expected collapsed select to ignore unrelated keys")
	}
	if _, _, consumed := s.HandleKey(keyMsg("enter")); !consumed || !s.Expanded() {
		t.Fatal("expected enter to expand")
	}
	if got := s.Height(); got != 2+article.FontColors.Len() {
		t.Errorf("expected height %d while expanded, got %d", 2+article.FontColors.Len(), got)
	}

	s.HandleKey(keyMsg("up")) // wraps to the last option
	o, changed, _ := s.HandleKey(keyMsg("enter"))
	last := article.FontColors.At(article.FontColors.Len() - 1)
	if !changed || o != last {
		t.Errorf("expected %v chosen, got %v (changed=%v)", last, o, changed)
	}
	if s.Expanded() {
		t.Error("expected choosing to collapse")
	}

	s.HandleKey(keyMsg("enter"))
	s.HandleKey(keyMsg("G"))
	if _, changed, _ := s.HandleKey(keyMsg("enter")); changed {
		t.Error("expected re-choosing the selected option to report no change")
	}
}

func TestSelect_BlurCollapses(t *testing.T) {
	s := NewSelect("Font", article.FieldFontFamily)
	s.Focus()
	s.HandleClick(1)
	if !s.Expanded() {
		t.Fatal("expected click on the control row to expand")
	}
	s.Blur()
	if s.Expanded() {
		t.Error("expected blur to collapse")
	}
}

func TestSelect_SetSelectedIgnoresForeignOptions(t *testing.T) {
	s := NewSelect("Font", article.FieldFontFamily)
	s.SetSelected(article.FontColors.At(3))
	if s.Selected() != article.FontFamilyOptions.At(0) {
		t.Errorf("expected selection unchanged, got %v", s.Selected())
	}
	s.SetSelected(article.FontFamilyOptions.At(2))
	if s.Selected() != article.FontFamilyOptions.At(2) {
		t.Errorf("expected %v, got %v", article.FontFamilyOptions.At(2), s.Selected())
	}
}

func TestSelect_View(t *testing.T) {
	s := NewSelect("Background color", article.FieldBackgroundColor)
	s.SetWidth(36)
	v := ansi.Strip(s.View())
	if !strings.Contains(v, "Background color") || !strings.Contains(v, "White") {
		t.Errorf("expected title and selected label, got %q", v)
	}
	s.HandleClick(1)
	v = ansi.Strip(s.View())
	if got := len(strings.Split(v, "\n")); got != s.Height() {
		t.Errorf("expected %d rows, got %d", s.Height(), got)
	}
	if !strings.Contains(v, "Black") {
		t.Errorf("expected expanded options, got %q", v)
	}
}

func TestRadioGroup_KeysWrap(t *testing.T) {
	r := NewRadioGroup("Font size", "font-size", article.FieldFontSize)
	o, changed, _ := r.HandleKey(keyMsg("left"))
	last := article.FontSizeOptions.At(article.FontSizeOptions.Len() - 1)
	if !changed || o != last {
		t.Errorf("expected left from the first size to wrap to %v, got %v", last, o)
	}
	o, _, _ = r.HandleKey(keyMsg("right"))
	if o != article.FontSizeOptions.At(0) {
		t.Errorf("expected right to wrap to the first size, got %v", o)
	}
	if _, _, consumed := r.HandleKey(keyMsg("enter")); consumed {
		t.Error("expected enter to be ignored by the radio group")
	}
}

func TestRadioGroup_ClickGaps(t *testing.T) {
	r := NewRadioGroup("Font size", "font-size", article.FieldFontSize)
	first := len([]rune(r.labels()[0]))
	if _, changed := r.HandleClick(1, first); changed {
		t.Error("expected a click in the gap to select nothing")
	}
	if _, changed := r.HandleClick(0, 0); changed {
		t.Error("expected a click on the title to select nothing")
	}
	o, changed := r.HandleClick(1, first+radioGap)
	if !changed || o != article.FontSizeOptions.At(1) {
		t.Errorf("expected second size, got %v (changed=%v)", o, changed)
	}
	if !strings.Contains(r.labels()[1], "(•)") {
		t.Errorf("expected second item marked, got %q", r.labels()[1])
	}
}

func TestFocusRing(t *testing.T) {
	var changes []string
	f := NewFocusRing("a", "b", "c")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if f.Current() != "a" {
		t.Errorf("expected a, got %q", f.Current())
	}
	f.Prev()
	f.Next()
	if f.Set("zz") {
		t.Error("expected unknown id to be rejected")
	}
	f.Set("a") // no change, no callback
	want := []string{"a>c", "c>a"}
	if strings.Join(changes, ",") != strings.Join(want, ",") {
		t.Errorf("expected changes %v, got %v", want, changes)
	}

	empty := NewFocusRing()
	if empty.Next() != "" || empty.Is("") {
		t.Error("expected empty ring to have no focus")
	}
}

func TestComposite(t *testing.T) {
	base := "abcdef\nghijkl\nmnopqr"
	got := Composite(base, "XY\nZW", 2, 1, 6, 3)
	want := "abcdef\nghXYkl\nmnZWqr"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Overlay rows past the height are dropped; short base rows are padded.
	got = Composite("ab", "XY\nZW", 3, 0, 6, 1)
	if got != "ab XY " {
		t.Errorf("expected %q, got %q", "ab XY ", got)
	}
}

func TestComposite_ClipsOverlayAtWidth(t *testing.T) {
	got := Composite("abcdef", "WXYZ", 4, 0, 6, 1)
	if got != "abcdWX" {
		t.Errorf("expected %q, got %q", "abcdWX", got)
	}
	got = Composite("abc", "XY", 6, 0, 4, 1)
	if ansi.StringWidth(got) > 6 {
		t.Errorf("expected overlay past the right edge to be dropped, got %q", got)
	}
}

func TestComposite_PreservesStyledBase(t *testing.T) {
	base := Styles.Heading.Render("abcdef")
	got := ansi.Strip(Composite(base, "X", 1, 0, 6, 1))
	if got != "aXcdef" {
		t.Errorf("expected %q, got %q", "aXcdef", got)
	}
}

func TestLayout(t *testing.T) {
	if NewLayout(10).PanelWidth != MinPanelWidth {
		t.Errorf("expected width clamped to %d", MinPanelWidth)
	}
	l := NewLayout(DefaultPanelWidth)

	x, y, w, h := l.PanelBounds(120, 30)
	if x != 0 || y != 0 || w != DefaultPanelWidth || h != 30 {
		t.Errorf("unexpected panel bounds %d,%d %dx%d", x, y, w, h)
	}
	if _, _, w, _ := l.PanelBounds(20, 30); w != 20 {
		t.Errorf("expected panel clamped to terminal width, got %d", w)
	}

	if x, _, _, _ := l.TriggerBounds(false, 5, 3)(120, 30); x != 0 {
		t.Errorf("expected closed trigger at the left edge, got %d", x)
	}
	if x, _, _, _ := l.TriggerBounds(true, 5, 3)(120, 30); x != DefaultPanelWidth {
		t.Errorf("expected open trigger beside the panel, got %d", x)
	}
	if x, _, _, _ := l.TriggerBounds(true, 5, 3)(48, 30); x != 43 {
		t.Errorf("expected trigger kept on screen, got %d", x)
	}
}

func TestPlacement_Rect(t *testing.T) {
	p := Placement{ID: "trigger", Bounds: NewLayout(40).TriggerBounds(true, 5, 3)}
	r := p.Rect(100, 20)
	if r.X != 40 || r.W != 5 || r.H != 3 {
		t.Errorf("unexpected rect %+v", r)
	}
	if (Placement{}).Rect(100, 20).W != 0 {
		t.Error("expected empty rect without bounds")
	}
}
