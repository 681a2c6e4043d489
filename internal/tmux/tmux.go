// Package tmux mirrors the applied article colors onto the tmux pane that
// hosts typeset, via exec. Everything is a no-op outside tmux (TMUX unset).
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"typeset/internal/article"
)

// InSession reports whether the process runs inside tmux.
func InSession() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentPane returns the ID of the pane typeset runs in (e.g. %3).
// TMUX_PANE is used when set; otherwise tmux is asked.
func CurrentPane(ctx context.Context) (string, error) {
	if id := os.Getenv("TMUX_PANE"); id != "" {
		return id, nil
	}
	cmd := exec.CommandContext(ctx, "tmux", "display-message", "-p", "#{pane_id}")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux display-message: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// PaneStyle formats a tmux style string. Empty colors become "default".
func PaneStyle(fg, bg string) string {
	if fg == "" {
		fg = "default"
	}
	if bg == "" {
		bg = "default"
	}
	return "fg=" + strings.ToLower(fg) + ",bg=" + strings.ToLower(bg)
}

// selectPaneArgs builds the select-pane invocation that styles paneID.
func selectPaneArgs(paneID, style string) []string {
	args := []string{"select-pane"}
	if paneID != "" {
		args = append(args, "-t", paneID)
	}
	return append(args, "-P", style)
}

// SetPaneStyle sets the foreground and background of paneID ("" = current pane).
func SetPaneStyle(ctx context.Context, paneID, fg, bg string) error {
	cmd := exec.CommandContext(ctx, "tmux", selectPaneArgs(paneID, PaneStyle(fg, bg))...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux select-pane: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// ResetPaneStyle restores the pane's default colors.
func ResetPaneStyle(ctx context.Context, paneID string) error {
	return SetPaneStyle(ctx, paneID, "", "")
}

// PaneStyler keeps one pane's colors in step with the applied configuration.
type PaneStyler struct {
	PaneID string
	set    func(ctx context.Context, paneID, fg, bg string) error
}

// NewPaneStyler returns a styler for the current pane, or nil outside tmux.
func NewPaneStyler(ctx context.Context) (*PaneStyler, error) {
	if !InSession() {
		return nil, nil
	}
	id, err := CurrentPane(ctx)
	if err != nil {
		return nil, err
	}
	return &PaneStyler{PaneID: id, set: SetPaneStyle}, nil
}

// Apply styles the pane with st's font and background colors.
// The default configuration restores the pane's own colors.
func (p *PaneStyler) Apply(ctx context.Context, st article.State) error {
	if p == nil {
		return nil
	}
	if st == article.DefaultState {
		return p.set(ctx, p.PaneID, "", "")
	}
	return p.set(ctx, p.PaneID, st.FontColor.Value, st.BackgroundColor.Value)
}

// Restore resets the pane's colors; called on exit.
func (p *PaneStyler) Restore(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.set(ctx, p.PaneID, "", "")
}
