package ui

import (
	"context"
	"log"

	"typeset/internal/article"
	"typeset/internal/panel"
	"typeset/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ApplyHook runs after a configuration has been applied to the article.
// reason is ActionSubmit or ActionReset. Hooks run as commands, off the update loop.
type ApplyHook struct {
	Name string
	Run  func(ctx context.Context, reason string, st article.State) error
}

// AppModel is the root model: the article fills the screen and the
// parameters panel slides over it from the left.
type AppModel struct {
	Width, Height int

	Article    *ArticleView
	Trigger    *ArrowButton
	Form       *ParamsForm
	Overlay    Overlay
	Pointer    *panel.PointerSource
	KeyHandler *KeyHandler
	Store      *article.Store
	Layout     Layout
	Hooks      []ApplyHook

	// Applied is the configuration the article is currently rendered with.
	Applied article.State
	Status  string
	Err     error

	// Trigger rectangle captured on left-button press; a release inside it is a click.
	pressedTrigger bool
	pressRect      panel.Rect

	pending []tea.Cmd
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing doc, loaded from store.
// store may be nil, in which case reloads are no-ops.
func NewAppModel(store *article.Store, doc article.Document, layout Layout, hooks ...ApplyHook) *AppModel {
	m := &AppModel{
		Trigger: &ArrowButton{},
		Pointer: panel.NewPointerSource(),
		Store:   store,
		Layout:  layout,
		Hooks:   hooks,
		Applied: article.DefaultState,
	}
	m.Article = NewArticleView(doc, m.Applied)
	m.Form = NewParamsForm(panel.NewController(m.apply), m.Pointer, layout)
	m.Overlay = Overlay{View: m.Form, Dismiss: "esc"}
	m.KeyHandler = NewKeyHandler(DefaultKeybinds())
	return m
}

// DefaultKeybinds returns the app's key bindings.
func DefaultKeybinds() *KeybindRegistry {
	quit := func() tea.Msg { return QuitMsg{} }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadArticleMsg{} }, "Reload article")
	reg.BindWithDesc("SPC p p", func() tea.Msg { return TogglePanelMsg{} }, "Toggle panel")
	reg.BindWhen("SPC p a", func() tea.Msg { return ApplyPanelMsg{} }, "Apply", panel.Open)
	reg.BindWhen("SPC p r", func() tea.Msg { return ResetPanelMsg{} }, "Reset", panel.Open)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Visibility returns the panel's current state.
func (m *AppModel) Visibility() panel.Visibility {
	return m.Form.Controller().Visibility()
}

// apply is the controller's apply callback. It re-renders the article and
// queues the hooks; the commands are returned from the current Update.
func (m *AppModel) apply(st article.State) {
	reason := m.Form.LastAction()
	m.Applied = st
	m.Article.SetState(st)
	m.Status = reason + ": " + st.Summary()
	m.Err = m.Article.Err
	log.Printf("[app] %s: %s", reason, st.Summary())
	for _, h := range m.Hooks {
		m.pending = append(m.pending, runHook(h, reason, st))
	}
}

func runHook(h ApplyHook, reason string, st article.State) tea.Cmd {
	return func() tea.Msg {
		return HookDoneMsg{Hook: h.Name, Err: h.Run(context.Background(), reason, st)}
	}
}

// loadArticle reads the article from the store off the update loop.
func (m *AppModel) loadArticle() tea.Cmd {
	store := m.Store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		doc, err := store.Load()
		return ArticleLoadedMsg{Doc: doc, Err: err}
	}
}

// Init implements tea.Model. Mounting the panel acquires its outside-click subscription.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Form.Init(), a.Article.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if len(a.pending) == 0 {
		return a, cmd
	}
	cmds := append([]tea.Cmd{cmd}, a.pending...)
	a.pending = nil
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return nil
	case QuitMsg:
		a.Form.Unmount()
		return tea.Quit
	case TogglePanelMsg:
		a.Form.Toggle()
		return nil
	case ApplyPanelMsg:
		if a.Form.Controller().IsOpen() {
			a.Form.Submit()
		}
		return nil
	case ResetPanelMsg:
		if a.Form.Controller().IsOpen() {
			a.Form.Reset()
		}
		return nil
	case ReloadArticleMsg:
		return a.loadArticle()
	case ArticleChangedMsg:
		log.Printf("[app] article changed: %s", msg.Path)
		return a.loadArticle()
	case ArticleLoadedMsg:
		if msg.Err != nil {
			log.Printf("[app] load article: %v", msg.Err)
			a.Err = msg.Err
			return nil
		}
		a.Article.SetDocument(msg.Doc)
		a.Err = a.Article.Err
		a.Status = "loaded " + msg.Doc.Label()
		return nil
	case HookDoneMsg:
		if msg.Err != nil {
			log.Printf("[app] hook %s: %v", msg.Hook, msg.Err)
			a.Err = msg.Err
		}
		return nil
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	_, cmd := a.Article.Update(msg)
	return cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	// An expanded dropdown gets every key.
	if a.KeyHandler != nil && !a.Form.Capturing() {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Visibility()); consumed {
			return cmd
		}
	}
	if a.Form.Controller().IsOpen() {
		if a.Overlay.IsDismissKey(msg.String()) && !a.Form.Capturing() {
			a.Form.Close()
			return nil
		}
		_, cmd := a.Form.Update(msg)
		return cmd
	}
	_, cmd := a.Article.Update(msg)
	return cmd
}

// handleMouse routes pointer input. Every button press is first dispatched to
// the pointer subscribers (the outside-click watcher among them); only left
// presses then reach the trigger and the panel. The trigger toggles on release,
// so a click on the trigger while the panel is open closes it on press and
// reopens it on release.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := panel.Point{X: msg.X, Y: msg.Y}
	switch {
	case tea.MouseEvent(msg).IsWheel():
		if r, ok := a.Form.Bounds(); ok && a.Form.Controller().IsOpen() && r.Contains(p) {
			return nil
		}
		_, cmd := a.Article.Update(msg)
		return cmd
	case msg.Action == tea.MouseActionPress:
		left := msg.Button == tea.MouseButtonLeft
		if left {
			a.pressRect = a.triggerRect()
			a.pressedTrigger = a.pressRect.Contains(p)
		}
		a.Pointer.Dispatch(p)
		if !left || a.pressedTrigger {
			return nil
		}
		_, cmd := a.Form.Update(msg)
		return cmd
	case msg.Action == tea.MouseActionRelease:
		if a.pressedTrigger && a.pressRect.Contains(p) {
			a.Form.Toggle()
		}
		a.pressedTrigger = false
		return nil
	}
	return nil
}

func (a *AppModel) resize(width, height int) {
	a.Width, a.Height = width, height
	body := height - 1
	if body < 0 {
		body = 0
	}
	a.Article.SetSize(width, body)
	a.Form.SetSize(width, body)
	a.Err = a.Article.Err
}

func (a *AppModel) triggerPlacement() Placement {
	a.Trigger.IsOpen = a.Form.Controller().IsOpen()
	tw, th := a.Trigger.Size()
	return Placement{
		ID:     "trigger",
		View:   a.Trigger,
		Bounds: a.Layout.TriggerBounds(a.Trigger.IsOpen, tw, th),
	}
}

func (a *AppModel) triggerRect() panel.Rect {
	if a.Width <= 0 || a.Height <= 0 {
		return panel.Rect{}
	}
	return a.triggerPlacement().Rect(a.Width, a.Height-1)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	body := a.Height - 1
	screen := a.Article.View()
	if a.Form.Controller().IsOpen() {
		screen = Composite(screen, a.Form.View(), 0, 0, a.Width, body)
	}
	trigger := a.triggerPlacement()
	r := trigger.Rect(a.Width, body)
	screen = Composite(screen, trigger.View.View(), r.X, r.Y, a.Width, body)

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if hint := RenderKeybindHelp(a.KeyHandler, a.Visibility()); hint != "" {
			y := body - lipgloss.Height(hint)
			if y < 0 {
				y = 0
			}
			screen = Composite(screen, hint, a.Width-lipgloss.Width(hint), y, a.Width, body)
		}
	}
	return screen + "\n" + a.statusLine()
}

func (a *AppModel) statusLine() string {
	if a.Err != nil {
		return Styles.StatusError.Render(textutil.Truncate(a.Err.Error(), a.Width))
	}
	text := a.Article.Doc.Label()
	if a.Status != "" {
		text += " · " + a.Status
	}
	return Styles.Status.Render(textutil.Truncate(text, a.Width))
}
