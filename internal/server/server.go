// Package server is the SSH hunting lodge. Every connection plays one
// character named after its SSH user; a character can be online from one
// connection at a time.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"golang.org/x/sync/errgroup"

	"idlehunt/internal/game"
	internalssh "idlehunt/internal/ssh"
	"idlehunt/internal/store"
)

// maxNameBytes bounds the SSH user name before validation.
const maxNameBytes = 16

// shutdownGrace is how long open sessions get to save on shutdown.
const shutdownGrace = 5 * time.Second

// allowedTerms are the TERM values a client may select. Anything else falls
// back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm-256color":        true,
	"xterm":                 true,
	"tmux":                  true,
	"tmux-256color":         true,
	"screen":                true,
	"screen-256color":       true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// Server runs play sessions over SSH.
type Server struct {
	store  store.Store
	opts   game.Options
	logger *slog.Logger

	mu     sync.Mutex
	active map[string]bool
	base   context.Context // cancelled on shutdown

	// termMu protects os.Setenv("TERM") around screen creation.
	termMu sync.Mutex
}

// New creates a Server. opts is the template for every session; its Name
// and Logger are set per connection.
func New(st store.Store, opts game.Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:  st,
		opts:   opts,
		logger: logger,
		active: make(map[string]bool),
		base:   context.Background(),
	}
}

// Online returns the names of the characters currently playing.
func (s *Server) Online() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.active))
	for n := range s.active {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (s *Server) claim(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[name] {
		return false
	}
	s.active[name] = true
	return true
}

func (s *Server) release(name string) {
	s.mu.Lock()
	delete(s.active, name)
	s.mu.Unlock()
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string, signer gossh.Signer) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, signer)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// and waits for open sessions to save.
func (s *Server) Serve(ctx context.Context, ln net.Listener, signer gossh.Signer) error {
	srv := &gossh.Server{
		Handler: s.Handle,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No auth handlers: the SSH user name picks the character.
		HostSigners: []gossh.Signer{signer},
	}
	s.logger.Info("ssh lodge listening", "addr", ln.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	s.mu.Lock()
	s.base = ctx
	s.mu.Unlock()
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Info("ssh lodge shutting down", "online", len(s.Online()))
		if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	})
	return g.Wait()
}

// Handle is the gliderlabs SSH handler for one connection. It blocks for
// the duration of the connection so the SSH session stays open.
func (s *Server) Handle(sess gossh.Session) {
	name := sanitizeName(sess.User())
	log := s.logger.With("name", name, "remote", sess.RemoteAddr().String())
	if !store.ValidName(name) {
		fmt.Fprintln(sess, "Connect as a character name of letters, digits, - and _: ssh <name>@<host>")
		return
	}
	if !s.claim(name) {
		fmt.Fprintf(sess, "%s is already hunting from another connection.\n", name)
		log.Info("login rejected", "reason", "already online")
		return
	}
	defer s.release(name)

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "This game requires a PTY. Connect with: ssh -t <name>@<host>")
		return
	}

	screen, err := s.newScreen(sess, pty, winCh)
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup", "error", err)
		return
	}
	defer screen.Fini()

	// The session ends with the connection or with the server.
	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()
	s.mu.Lock()
	base := s.base
	s.mu.Unlock()
	stop := context.AfterFunc(base, cancel)
	defer stop()

	opts := s.opts
	opts.Name = name
	opts.Logger = log
	log.Info("connected")
	if err := game.Play(ctx, screen, s.store, opts); err != nil {
		log.Warn("play session", "error", err)
	}
}

// newScreen creates a tcell screen backed by the SSH session. TERM must be
// set in the process environment before NewTerminfoScreenFromTty.
func (s *Server) newScreen(sess gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	tty := internalssh.NewSessionTty(sess, pty, winCh)
	s.termMu.Lock()
	_ = os.Setenv("TERM", termFor(pty.Term, sess.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	s.termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// termFor picks the terminal type from the PTY request, then the session
// environment, keeping only known-safe values.
func termFor(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if allowedTerms[term] {
		return term
	}
	return defaultTerm
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
