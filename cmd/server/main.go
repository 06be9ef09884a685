// idlehunt-server runs the SSH hunting lodge. Build:
//
//	go build -o idlehunt-server ./cmd/server
//
// Usage:
//
//	./idlehunt-server [-config idlehunt.yaml] [-port 2222] [-key server_host_key]
//
// Connect as the character you want to play:
//
//	ssh -p 2222 aria@localhost
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"idlehunt/internal/config"
	"idlehunt/internal/server"
	"idlehunt/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	port := flag.Int("port", 0, "SSH server port (overrides config)")
	keyFile := flag.String("key", "", "Path to the PEM-encoded host key, auto-generated if absent (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	st, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	signer, err := server.HostKey(cfg.Server.HostKey, logger)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("idlehunt lodge on %s, saves in %s", addr, st.Dir())
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no <name>@localhost", cfg.Server.Port)
	if err := server.New(st, cfg.Session(), logger).ListenAndServe(ctx, addr, signer); err != nil {
		log.Fatal(err)
	}
}
