package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func TestConfigPathPrefersEnv(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/tmp/custom.yaml")
	if got := configPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("expected env override, got %q", got)
	}
}

func TestConfigPathFallsBackToConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, config.AppName, config.ConfigFileName)
	if got := configPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSetupLoggingWritesToFile(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(config.EnvLogFile, path)
	closeLog, err := setupLogging()
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	log.Print("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Contains(data, []byte("hello")) {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestSetupLoggingDiscardsWithoutEnv(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	t.Setenv(config.EnvLogFile, "")
	closeLog, err := setupLogging()
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer closeLog()
	if log.Writer() != io.Discard {
		t.Fatalf("expected log output to be discarded")
	}
}

func TestWatchConfigSkipsMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", config.ConfigFileName)
	done := make(chan error, 1)
	go func() {
		done <- watchConfig(context.Background(), path, func(tea.Msg) {})
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watchConfig blocked on a missing directory")
	}
}

func TestWatchConfigSendsReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan tea.Msg, 4)
	go func() { _ = watchConfig(ctx, path, func(m tea.Msg) { msgs <- m }) }()

	tick := time.NewTicker(4 * config.ReloadDebounce)
	defer tick.Stop()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case m := <-msgs:
			reload, ok := m.(tui.ConfigReloadedMsg)
			if !ok {
				t.Fatalf("unexpected message %T", m)
			}
			if reload.Err != nil || reload.Config.Duration() != 1500*time.Millisecond {
				t.Fatalf("unexpected reload %+v", reload)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("duration_ms: 1500\n"), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
		case <-deadline:
			t.Fatalf("no reload received")
		}
	}
}

func TestRunRefusesWithoutTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunClosesLogOnConfigError(t *testing.T) {
	prev, prefix := log.Writer(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetPrefix(prefix)
	})
	orig := isTerminal
	isTerminal = func() bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("duration_ms: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	logPath := filepath.Join(dir, "debug.log")
	t.Setenv(config.EnvConfigPath, cfgPath)
	t.Setenv(config.EnvLogFile, logPath)

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Contains(data, []byte("load config")) {
		t.Fatalf("expected the config error in the log, got %q", data)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("expected the log file to be closed before returning")
	}
}
