package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
)

// ErrNoPty is returned for sessions opened without a terminal (ssh -T).
var ErrNoPty = errors.New("session has no pty; connect with ssh -t")

// Tty adapts one SSH session to tcell.Tty so every connection drives its own
// tcell.Screen.
type Tty struct {
	session gossh.Session
	log     logrus.FieldLogger

	mu       sync.Mutex
	window   gossh.Window
	onResize func()

	resizes <-chan gossh.Window
	watch   sync.Once
}

// NewTty wraps s. pty carries the initial size; resizes delivers the rest.
func NewTty(s gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window, log logrus.FieldLogger) *Tty {
	return &Tty{session: s, log: log, window: pty.Window, resizes: resizes}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest terminal size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the resize callback. The first call starts draining the
// window-change channel until the session ends.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go t.watchResizes()
	})
}

func (t *Tty) watchResizes() {
	for win := range t.resizes {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()

		t.log.WithFields(logrus.Fields{"width": win.Width, "height": win.Height}).Debug("terminal resized")
		if cb != nil {
			cb()
		}
	}
}

const defaultTerm = "xterm-256color"

// allowedTerms are the terminal types a client may select. TERM names a
// terminfo entry, so arbitrary client strings are not passed through.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// resolveTerm picks the terminal type from the pty request, then the
// session environment, falling back to xterm-256color.
func resolveTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return defaultTerm
}

// termMu serialises TERM lookups: tcell reads the terminal type from the
// process environment.
var termMu sync.Mutex

// NewScreen opens an initialised tcell screen on the session's PTY.
func NewScreen(s gossh.Session, log logrus.FieldLogger) (tcell.Screen, error) {
	pty, resizes, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	term := resolveTerm(pty.Term, s.Environ())

	tty := NewTty(s, pty, resizes, log)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup (%s): %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
