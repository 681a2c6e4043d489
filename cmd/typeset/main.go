package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"typeset/internal/article"
	"typeset/internal/config"
	"typeset/internal/telemetry"
	"typeset/internal/tmux"
	"typeset/internal/ui"
	"typeset/internal/watcher"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds the parsed command-line flags. Set flags override the config file.
type options struct {
	configPath  string
	articlePath string
	noMouse     bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "config file (default $TYPESET_CONFIG or ~/.config/typeset/config.toml)")
	flag.StringVar(&opts.articlePath, "article", "", "markdown article to read (default: built-in sample)")
	flag.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typeset [flags] [article.md]\n\n")
		fmt.Fprintf(os.Stderr, "typeset shows a markdown article in the terminal with a slide-out\n")
		fmt.Fprintf(os.Stderr, "panel for choosing font, size, colors and content width.\n")
		fmt.Fprintf(os.Stderr, "Press SPC for key bindings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if opts.articlePath == "" && flag.NArg() > 0 {
		opts.articlePath = flag.Arg(0)
	}
	return opts
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.articlePath != "" {
		cfg.Article.Path = opts.articlePath
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := article.NewStore(cfg.Article.Path)
	if err != nil {
		return err
	}
	doc, err := store.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	hooks, cleanup := applyHooks(ctx, cfg, store)
	defer cleanup()

	model := ui.NewAppModel(store, doc, ui.NewLayout(cfg.UI.PanelWidth), hooks...)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model.AsTeaModel(), programOpts...)

	if cfg.Article.Watch && !store.IsSample() {
		w, err := watcher.New(store.Path(), watcher.DefaultDebounce, func(path string) {
			p.Send(ui.ArticleChangedMsg{Path: path})
		})
		if err != nil {
			log.Printf("[watcher] disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	log.Printf("[typeset] reading %s", doc.Label())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty, since the terminal belongs to the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "typeset")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// applyHooks builds the optional side effects of applying a configuration:
// tmux pane styling and telemetry. cleanup restores the pane and flushes spans.
func applyHooks(ctx context.Context, cfg config.Config, store *article.Store) (hooks []ui.ApplyHook, cleanup func()) {
	var cleanups []func()
	cleanup = func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if cfg.Tmux.SyncPaneStyle {
		styler, err := tmux.NewPaneStyler(ctx)
		switch {
		case err != nil:
			log.Printf("[tmux] pane styling disabled: %v", err)
		case styler == nil:
			log.Printf("[tmux] not inside tmux; pane styling disabled")
		default:
			hooks = append(hooks, ui.ApplyHook{
				Name: "tmux",
				Run: func(ctx context.Context, _ string, st article.State) error {
					return styler.Apply(ctx, st)
				},
			})
			cleanups = append(cleanups, func() {
				if err := styler.Restore(context.Background()); err != nil {
					log.Printf("[tmux] restore pane style: %v", err)
				}
			})
		}
	}

	exp, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Printf("[telemetry] disabled: %v", err)
	}
	if exp != nil {
		document := "sample"
		if !store.IsSample() {
			document = filepath.Base(store.Path())
		}
		hooks = append(hooks, ui.ApplyHook{
			Name: "telemetry",
			Run: func(ctx context.Context, reason string, st article.State) error {
				exp.RecordApply(ctx, reason, document, st, nil)
				return nil
			},
		})
		cleanups = append(cleanups, func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := exp.Shutdown(shutdownCtx); err != nil {
				log.Printf("[telemetry] %v", err)
			}
		})
	}
	return hooks, cleanup
}
