package ui

import (
	"log"
	"strings"

	"typeset/internal/article"
	"typeset/internal/panel"
	"typeset/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus IDs of the panel controls, in tab order.
const (
	FocusFontFamily      = "fontFamily"
	FocusFontSize        = "fontSize"
	FocusFontColor       = "fontColor"
	FocusBackgroundColor = "backgroundColor"
	FocusContentWidth    = "contentWidth"
	FocusReset           = "reset"
	FocusApply           = "apply"
)

// Actions recorded by LastAction.
const (
	ActionSubmit = "submit"
	ActionReset  = "reset"
)

const (
	panelHeading = "Set parameters"
	buttonGap    = 2
)

// fieldControl is implemented by Select and RadioGroup.
type fieldControl interface {
	Focus()
	Blur()
	Selected() article.Option
	SetSelected(article.Option)
	HandleKey(tea.KeyMsg) (article.Option, bool, bool)
}

// hitZone is a band of rows inside the panel body owned by one control.
type hitZone struct {
	id     string
	top    int
	height int
}

// ParamsForm is the slide-out article parameters panel.
//
// It renders the controls for every configuration field, routes keyboard and
// mouse input to them, and keeps the panel.Controller's pending state in sync.
// Init mounts it (acquiring the outside-click subscription); Unmount releases it.
type ParamsForm struct {
	ctrl    *panel.Controller
	watcher *panel.OutsideWatcher
	layout  Layout

	width, height int
	sized         bool

	fontFamily   *Select
	fontSize     *RadioGroup
	fontColor    *Select
	background   *Select
	contentWidth *Select
	resetBtn     *Button
	applyBtn     *Button

	focus      *FocusRing
	lastAction string
}

// Ensure ParamsForm implements View.
var _ View = (*ParamsForm)(nil)

// NewParamsForm creates the panel around ctrl. Pointer-downs from source that
// land outside the panel close it while the form is mounted.
func NewParamsForm(ctrl *panel.Controller, source *panel.PointerSource, layout Layout) *ParamsForm {
	f := &ParamsForm{
		ctrl:         ctrl,
		layout:       layout,
		fontFamily:   NewSelect("Font", article.FieldFontFamily),
		fontSize:     NewRadioGroup("Font size", "font-size", article.FieldFontSize),
		fontColor:    NewSelect("Font color", article.FieldFontColor),
		background:   NewSelect("Background color", article.FieldBackgroundColor),
		contentWidth: NewSelect("Content width", article.FieldContentWidth),
		resetBtn:     &Button{Title: "Reset", Kind: ButtonClear},
		applyBtn:     &Button{Title: "Apply", Kind: ButtonApply},
	}
	f.focus = NewFocusRing(
		FocusFontFamily, FocusFontSize, FocusFontColor,
		FocusBackgroundColor, FocusContentWidth, FocusReset, FocusApply,
	)
	f.focus.OnChange = func(from, to string) {
		f.blur(from)
		f.focusControl(to)
	}
	f.focusControl(f.focus.Current())
	f.watcher = panel.NewOutsideWatcher(source, panel.RegionFunc(f.Bounds), f.Close)
	f.syncControls()
	for _, s := range []*Select{f.fontFamily, f.fontColor, f.background, f.contentWidth} {
		s.SetWidth(f.innerWidth())
	}
	return f
}

// Init implements View. Mounting acquires the outside-click subscription.
func (f *ParamsForm) Init() tea.Cmd {
	f.watcher.Activate()
	return nil
}

// Unmount releases the outside-click subscription. Safe to call repeatedly.
func (f *ParamsForm) Unmount() {
	f.watcher.Deactivate()
}

// Mounted reports whether the form currently listens for outside clicks.
func (f *ParamsForm) Mounted() bool {
	return f.watcher.Active()
}

// Controller returns the underlying controller.
func (f *ParamsForm) Controller() *panel.Controller {
	return f.ctrl
}

// SetSize records the terminal size. Until it is called the panel has no
// bounds and outside clicks are ignored.
func (f *ParamsForm) SetSize(width, height int) {
	f.width, f.height = width, height
	f.sized = width > 0 && height > 0
	for _, s := range []*Select{f.fontFamily, f.fontColor, f.background, f.contentWidth} {
		s.SetWidth(f.innerWidth())
	}
}

// Bounds returns the panel's screen rectangle. A closed panel sits just off
// the left edge of the screen.
func (f *ParamsForm) Bounds() (panel.Rect, bool) {
	if !f.sized {
		return panel.Rect{}, false
	}
	x, y, w, h := f.layout.PanelBounds(f.width, f.height)
	if !f.ctrl.IsOpen() {
		x -= w
	}
	return panel.Rect{X: x, Y: y, W: w, H: h}, true
}

// Toggle opens or closes the panel.
func (f *ParamsForm) Toggle() {
	f.ctrl.Toggle()
	if !f.ctrl.IsOpen() {
		f.collapse()
	}
}

// Close hides the panel. It is the outside-click callback.
func (f *ParamsForm) Close() {
	f.ctrl.Close()
	f.collapse()
}

// Submit applies the pending configuration.
func (f *ParamsForm) Submit() {
	f.lastAction = ActionSubmit
	f.ctrl.Submit()
}

// Reset restores and applies the default configuration.
func (f *ParamsForm) Reset() {
	f.lastAction = ActionReset
	f.ctrl.Reset()
	f.syncControls()
}

// LastAction returns ActionSubmit or ActionReset for the most recent apply.
func (f *ParamsForm) LastAction() string {
	return f.lastAction
}

// Focused returns the ID of the focused control.
func (f *ParamsForm) Focused() string {
	return f.focus.Current()
}

// Capturing reports whether a control wants keys that would otherwise dismiss
// the panel (an expanded dropdown).
func (f *ParamsForm) Capturing() bool {
	for _, s := range []*Select{f.fontFamily, f.fontColor, f.background, f.contentWidth} {
		if s.Expanded() {
			return true
		}
	}
	return false
}

// Update implements View. Keys and left-button presses are handled only
// while the panel is open.
func (f *ParamsForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		f.SetSize(size.Width, size.Height)
		return f, nil
	}
	if !f.ctrl.IsOpen() {
		return f, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		f.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			f.handleClick(panel.Point{X: msg.X, Y: msg.Y})
		}
	}
	return f, nil
}

func (f *ParamsForm) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "tab":
		f.focus.Next()
		return
	case "shift+tab":
		f.focus.Prev()
		return
	}
	switch id := f.focus.Current(); id {
	case FocusReset:
		if msg.String() == "enter" {
			f.Reset()
		}
	case FocusApply:
		if msg.String() == "enter" {
			f.Submit()
		}
	default:
		c, field := f.control(id)
		if c == nil {
			return
		}
		if o, changed, _ := c.HandleKey(msg); changed {
			f.setField(field, o)
		}
	}
}

func (f *ParamsForm) handleClick(p panel.Point) {
	rect, ok := f.Bounds()
	if !ok || !rect.Contains(p) {
		return
	}
	top := rect.Y + Styles.Panel.GetBorderTopSize() + Styles.Panel.GetPaddingTop()
	left := rect.X + Styles.Panel.GetBorderLeftSize() + Styles.Panel.GetPaddingLeft()
	row, col := p.Y-top, p.X-left

	_, zones := f.body()
	for _, z := range zones {
		if row < z.top || row >= z.top+z.height {
			continue
		}
		rel := row - z.top
		switch z.id {
		case FocusFontSize:
			f.focus.Set(z.id)
			if o, changed := f.fontSize.HandleClick(rel, col); changed {
				f.setField(article.FieldFontSize, o)
			}
		case FocusFontFamily, FocusFontColor, FocusBackgroundColor, FocusContentWidth:
			f.focus.Set(z.id)
			c, field := f.control(z.id)
			if o, changed := c.(*Select).HandleClick(rel); changed {
				f.setField(field, o)
			}
		case "buttons":
			resetEnd := f.resetBtn.Width()
			applyStart := resetEnd + buttonGap
			switch {
			case col >= 0 && col < resetEnd:
				f.focus.Set(FocusReset)
				f.Reset()
			case col >= applyStart && col < applyStart+f.applyBtn.Width():
				f.focus.Set(FocusApply)
				f.Submit()
			}
		}
		return
	}
}

func (f *ParamsForm) setField(field article.Field, o article.Option) {
	if err := f.ctrl.SetField(field, o); err != nil {
		log.Printf("[panel] %v", err)
		f.syncControls()
	}
}

// control maps a focus ID to its control and field.
func (f *ParamsForm) control(id string) (fieldControl, article.Field) {
	switch id {
	case FocusFontFamily:
		return f.fontFamily, article.FieldFontFamily
	case FocusFontSize:
		return f.fontSize, article.FieldFontSize
	case FocusFontColor:
		return f.fontColor, article.FieldFontColor
	case FocusBackgroundColor:
		return f.background, article.FieldBackgroundColor
	case FocusContentWidth:
		return f.contentWidth, article.FieldContentWidth
	}
	return nil, 0
}

func (f *ParamsForm) focusControl(id string) {
	switch id {
	case FocusReset:
		f.resetBtn.Focus()
	case FocusApply:
		f.applyBtn.Focus()
	default:
		if c, _ := f.control(id); c != nil {
			c.Focus()
		}
	}
}

func (f *ParamsForm) blur(id string) {
	switch id {
	case FocusReset:
		f.resetBtn.Blur()
	case FocusApply:
		f.applyBtn.Blur()
	default:
		if c, _ := f.control(id); c != nil {
			c.Blur()
		}
	}
}

// collapse closes any open dropdown without moving focus.
func (f *ParamsForm) collapse() {
	id := f.focus.Current()
	f.blur(id)
	f.focusControl(id)
}

// syncControls makes every control show the controller's pending option.
func (f *ParamsForm) syncControls() {
	pending := f.ctrl.Pending()
	for _, id := range []string{FocusFontFamily, FocusFontSize, FocusFontColor, FocusBackgroundColor, FocusContentWidth} {
		c, field := f.control(id)
		c.SetSelected(pending.Get(field))
	}
}

func (f *ParamsForm) innerWidth() int {
	w := f.layout.PanelWidth
	if f.sized && w > f.width {
		w = f.width
	}
	return w - Styles.Panel.GetHorizontalFrameSize()
}

// body renders the panel contents and reports which rows belong to which control.
func (f *ParamsForm) body() (string, []hitZone) {
	inner := f.innerWidth()
	buttons := f.resetBtn.View() + strings.Repeat(" ", buttonGap) + f.applyBtn.View()
	blocks := []struct {
		id   string
		view string
	}{
		{"", Heading(panelHeading, inner)},
		{"", ""},
		{FocusFontFamily, f.fontFamily.View()},
		{"", ""},
		{FocusFontSize, f.fontSize.View()},
		{"", ""},
		{FocusFontColor, f.fontColor.View()},
		{"", ""},
		{"", Separator(inner)},
		{"", ""},
		{FocusBackgroundColor, f.background.View()},
		{"", ""},
		{FocusContentWidth, f.contentWidth.View()},
		{"", ""},
		{"buttons", buttons},
	}

	views := make([]string, len(blocks))
	zones := make([]hitZone, 0, len(blocks))
	row := 0
	for i, b := range blocks {
		h := lipgloss.Height(b.view)
		views[i] = b.view
		if b.id != "" {
			zones = append(zones, hitZone{id: b.id, top: row, height: h})
		}
		row += h
	}
	return strings.Join(views, "\n"), zones
}

// View implements View. A closed panel renders nothing.
func (f *ParamsForm) View() string {
	if !f.ctrl.IsOpen() {
		return ""
	}
	_, _, w, h := f.layout.PanelBounds(f.width, f.height)
	body, _ := f.body()
	style := Styles.Panel.Width(w - Styles.Panel.GetHorizontalBorderSize())
	if h > 0 {
		style = style.Height(h - Styles.Panel.GetVerticalBorderSize())
	}
	return style.Render(body)
}

// Summary is a one-line description of the pending configuration.
func (f *ParamsForm) Summary(width int) string {
	return textutil.Truncate(f.ctrl.Pending().Summary(), width)
}
