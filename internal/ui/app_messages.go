package ui

import "typeset/internal/article"

// TogglePanelMsg opens or closes the parameters panel (SPC p p).
type TogglePanelMsg struct{}

// ApplyPanelMsg applies the pending configuration (SPC p a, panel open only).
type ApplyPanelMsg struct{}

// ResetPanelMsg restores and applies the default configuration (SPC p r, panel open only).
type ResetPanelMsg struct{}

// ReloadArticleMsg asks the app to re-read the article from its store (SPC r).
type ReloadArticleMsg struct{}

// ArticleChangedMsg is sent by the file watcher when the article file changes on disk.
type ArticleChangedMsg struct {
	Path string
}

// ArticleLoadedMsg carries the result of loading the article.
type ArticleLoadedMsg struct {
	Doc article.Document
	Err error
}

// HookDoneMsg reports the outcome of one apply hook.
type HookDoneMsg struct {
	Hook string
	Err  error
}

// QuitMsg unmounts the panel and exits (q, ctrl+c, SPC q).
type QuitMsg struct{}
