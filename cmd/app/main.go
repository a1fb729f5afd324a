package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/dialog"
	"github.com/akyairhashvil/timedialog/internal/tui"
	"github.com/akyairhashvil/timedialog/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	os.Exit(run())
}

// run is the program body. It returns the exit code so that deferred
// cleanup finishes before the process exits.
func run() int {
	if !isTerminal() {
		fmt.Fprintln(os.Stderr, "timedialog needs an interactive terminal")
		return 1
	}

	// 1. Logging
	closeLog, err := setupLogging()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	defer closeLog()

	// 2. Configuration
	path := configPath()
	cfg, err := config.Load(path)
	if util.LogError("load config", err) {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}

	// 3. Model and program
	model, err := tui.NewAppModel(cfg, dialog.SystemClock{})
	if util.LogError("build model", err) {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if err := runProgram(p, path); util.LogError("run program", err) {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

// runProgram drives the program and the config watcher until the program
// exits.
func runProgram(p *tea.Program, path string) error {
	g, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		return watchConfig(ctx, path, p.Send)
	})
	return g.Wait()
}

// watchConfig forwards config reloads to the program. A missing config
// directory disables hot reload.
func watchConfig(ctx context.Context, path string, send func(tea.Msg)) error {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil
	}
	err := config.Watch(ctx, path, func(f config.File, err error) {
		send(tui.ConfigReloadedMsg{Config: f, Err: err})
	})
	util.LogError("watch config", err)
	return nil
}

func configPath() string {
	if p := strings.TrimSpace(os.Getenv(config.EnvConfigPath)); p != "" {
		return p
	}
	return filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
}

// setupLogging routes the standard logger to $TIMEDIALOG_LOG, or drops it.
func setupLogging() (func(), error) {
	path := strings.TrimSpace(os.Getenv(config.EnvLogFile))
	if path == "" {
		util.DiscardLogs()
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
