package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"typeset/internal/article"
	"typeset/internal/config"
)

func TestApplyHooks_NoneByDefault(t *testing.T) {
	store, err := article.NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	hooks, cleanup := applyHooks(context.Background(), config.Config{}, store)
	defer cleanup()
	if len(hooks) != 0 {
		t.Errorf("expected no hooks without tmux or telemetry, got %d", len(hooks))
	}
}

func TestApplyHooks_TmuxOutsideSession(t *testing.T) {
	t.Setenv("TMUX", "")
	store, _ := article.NewStore("")
	cfg := config.Config{Tmux: config.TmuxConfig{SyncPaneStyle: true}}
	hooks, cleanup := applyHooks(context.Background(), cfg, store)
	defer cleanup()
	if len(hooks) != 0 {
		t.Errorf("expected tmux hook to be skipped outside tmux, got %d hooks", len(hooks))
	}
}

func TestApplyHooks_Telemetry(t *testing.T) {
	store, _ := article.NewStore("")
	cfg := config.Config{Telemetry: config.TelemetryConfig{OTLPEndpoint: "localhost:4318", Insecure: true}}
	hooks, cleanup := applyHooks(context.Background(), cfg, store)
	defer cleanup()
	if len(hooks) != 1 || hooks[0].Name != "telemetry" {
		t.Fatalf("expected one telemetry hook, got %v", hooks)
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "typeset.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Printf("[test] hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[test] hello") {
		t.Errorf("expected log line in file, got %q", data)
	}
}
