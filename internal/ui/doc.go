// Package ui is the Bubble Tea front end of typeset.
//
// Core pieces:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - AppModel: the root model; owns the article view, the trigger and the panel
//   - ParamsForm: the slide-out parameters panel, built from Select, RadioGroup and Button
//   - Placement/Layout: where the panel and trigger sit for a given terminal size
//   - Overlay/Composite: drawing the panel over the article
//   - KeybindRegistry/KeyHandler: SPC-leader key sequences
//
// Mouse presses are fed to a panel.PointerSource before any view sees them, so
// the panel's outside-click watcher observes every press on the screen.
package ui
