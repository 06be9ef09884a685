// idlehunt is the local terminal client. Usage:
//
//	idlehunt -name aria [-vocation knight] [-config idlehunt.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"idlehunt/internal/config"
	"idlehunt/internal/content"
	"idlehunt/internal/game"
	"idlehunt/internal/store"
)

func main() {
	name := flag.String("name", "", "Character name (letters, digits, - and _)")
	vocation := flag.String("vocation", "", "Vocation for a new character; asked when empty")
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	if err := run(*name, *vocation, *cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(name, vocation, cfgPath string) error {
	if name == "" {
		name = os.Getenv("USER")
	}
	if !store.ValidName(name) {
		return fmt.Errorf("invalid character name %q", name)
	}
	voc := content.Vocation(vocation)
	if voc != "" && !validVocation(voc) {
		return fmt.Errorf("unknown vocation %q", vocation)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file in the data dir.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "idlehunt.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	st, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cfg.Session()
	opts.Name = name
	opts.Vocation = voc
	opts.Logger = logger
	return game.Play(ctx, screen, st, opts)
}

func validVocation(v content.Vocation) bool {
	return v != content.VocationNone && slices.Contains(content.Vocations, v)
}
