package ssh

import (
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type fakeContext struct {
	gossh.Context
	done chan struct{}
}

func (c fakeContext) Done() <-chan struct{} { return c.done }

type fakeSession struct {
	gossh.Session
	ctx fakeContext
}

func (s fakeSession) Context() gossh.Context { return s.ctx }

func newTty(w gossh.Window) (*SessionTty, chan gossh.Window, chan struct{}) {
	done := make(chan struct{})
	winCh := make(chan gossh.Window)
	sess := fakeSession{ctx: fakeContext{done: done}}
	return NewSessionTty(sess, gossh.Pty{Window: w}, winCh), winCh, done
}

func TestWindowSizeFallback(t *testing.T) {
	tty, _, _ := newTty(gossh.Window{})
	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatal(err)
	}
	if ws.Width != defaultWidth || ws.Height != defaultHeight {
		t.Errorf("size = %dx%d", ws.Width, ws.Height)
	}
}

func TestResizeUpdatesWindow(t *testing.T) {
	tty, winCh, done := newTty(gossh.Window{Width: 100, Height: 40})
	defer close(done)
	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })

	winCh <- gossh.Window{Width: 120, Height: 50}
	select {
	case <-resized:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 120 || ws.Height != 50 {
		t.Errorf("size = %dx%d, want 120x50", ws.Width, ws.Height)
	}
}
