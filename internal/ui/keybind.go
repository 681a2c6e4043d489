package ui

import (
	"sort"
	"strings"

	"typeset/internal/panel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC p a" for SPC then p then a.
// Single keys: "q", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	visibility   map[string][]panel.Visibility // nil/empty = applies whether the panel is open or not
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		visibility:   make(map[string][]panel.Visibility),
	}
}

// Bind registers a key sequence to a command, overwriting any previous binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWhen(seq, cmd, desc)
}

// BindWhen registers a binding that is only active while the panel is in one
// of the given visibility states. No states means always active.
func (r *KeybindRegistry) BindWhen(seq string, cmd tea.Cmd, desc string, states ...panel.Visibility) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(states) > 0 {
		r.visibility[n] = states
	} else {
		delete(r.visibility, n)
	}
}

// Lookup returns the command for a key sequence in the given state, or nil.
func (r *KeybindRegistry) Lookup(seq string, state panel.Visibility) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, state) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names first-level keys that open a submenu.
var submenuLabel = map[string]string{
	"p": "Panel",
}

// LeaderHints returns the next keys available after currentSeq ("" means right
// after SPC), mapped to their descriptions. Keys that lead to a submenu show
// the submenu's label. Bindings inactive in state are left out.
func (r *KeybindRegistry) LeaderHints(currentSeq string, state panel.Visibility) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, state) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			next = parts[0]
		}
		if r.HasPrefix(prefix + next) {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, state panel.Visibility) bool {
	states, ok := r.visibility[seq]
	if !ok || len(states) == 0 {
		return true
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format ("space" -> "SPC").
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() for space)
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true after the leader until a binding completes or is abandoned
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg for the given panel state. Returns (consumed, cmd).
// Consumed keys must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, state panel.Visibility) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.cancel()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, state); c != nil {
			h.cancel()
			return true, c
		}
		// Stay in leader mode while a longer binding may still match.
		if !h.Registry.HasPrefix(seq) {
			h.cancel()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), state); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the sequence typed so far in leader mode, or "".
func (h *KeyHandler) CurrentSeq() string {
	if !h.LeaderWaiting || len(h.Buffer) <= 1 {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap implements help.KeyMap over the leader hints for the current state.
type KeyMap struct {
	handler *KeyHandler
	state   panel.Visibility
}

// NewKeyMap creates a KeyMap for the handler's current sequence and the panel state.
func NewKeyMap(handler *KeyHandler, state panel.Visibility) help.KeyMap {
	return &KeyMap{handler: handler, state: state}
}

// ShortHelp returns one binding per available next key, sorted, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(km.handler.CurrentSeq(), km.state)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
