// Package server serves the animation to remote terminals over SSH. Each
// session owns its own driver, canvas and config, so connected viewers tune
// their view independently.
package server

import (
	"fmt"
	"io"
	"log"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"isoflow/internal/anim"
	"isoflow/internal/noise"
	"isoflow/internal/term"
)

// Options configures the SSH listener and the per-session animation.
type Options struct {
	Addr    string
	HostKey string // path to the host key file; empty generates an ephemeral key
	TPS     int    // frames per second pushed to each session
	Seed    int64
	Noise   string // noise backend, "perlin" or "simplex"
	Config  anim.Config
}

// Server wraps the SSH listener and per-session frame loops.
type Server struct {
	opts Options
}

// New creates a server with normalized options.
func New(opts Options) *Server {
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	opts.Config = opts.Config.Clamp()
	return &Server{opts: opts}
}

// Start begins listening for SSH connections. It blocks until the listener
// fails.
func (s *Server) Start() error {
	srv := &ssh.Server{
		Addr: s.opts.Addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	if s.opts.HostKey != "" {
		if err := srv.SetOption(ssh.HostKeyFile(s.opts.HostKey)); err != nil {
			return fmt.Errorf("set host key: %w", err)
		}
	}
	log.Printf("SSH server listening on %s", s.opts.Addr)
	return srv.ListenAndServe()
}

// action is a key command decoded from session input.
type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionSpeedUp
	actionSpeedDown
	actionMoreLines
	actionFewerLines
)

func (s *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}
	log.Printf("viewer connected: %s", user)
	defer log.Printf("viewer disconnected: %s", user)

	cfg := s.opts.Config
	driver := anim.NewDriver(noise.NewSource(s.opts.Noise, s.opts.Seed))
	canvas := term.NewCanvas(ptyReq.Window.Width, ptyReq.Window.Height)

	io.WriteString(sess, term.EnableAltScreen())
	io.WriteString(sess, term.HideCursor())
	io.WriteString(sess, term.ClearScreen())
	defer func() {
		io.WriteString(sess, term.ShowCursor())
		io.WriteString(sess, term.DisableAltScreen())
	}()

	actions := make(chan action, 8)
	quit := make(chan struct{})

	// Input is decoded on its own goroutine; config mutation stays on the
	// frame loop so each frame reads a consistent snapshot.
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quit)
				return
			}
			for _, a := range parseInput(buf[:n]) {
				if a == actionQuit {
					close(quit)
					return
				}
				select {
				case actions <- a:
				default:
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.TPS))
	defer ticker.Stop()

	start := time.Now()
	paused := false

	for {
		select {
		case <-quit:
			return
		case <-sess.Context().Done():
			return
		case win, ok := <-winCh:
			if !ok {
				return
			}
			canvas.Resize(win.Width, win.Height)
		case a := <-actions:
			switch a {
			case actionPause:
				paused = !paused
			case actionSpeedUp:
				cfg.Speed += 0.1
			case actionSpeedDown:
				cfg.Speed -= 0.1
			case actionMoreLines:
				cfg.NumLines++
			case actionFewerLines:
				cfg.NumLines--
			}
			cfg = cfg.Clamp()
		case <-ticker.C:
			frame := cfg
			if paused {
				frame.Speed = 0
			}
			driver.Frame(time.Since(start).Seconds(), frame, canvas)
			io.WriteString(sess, canvas.Render())
		}
	}
}

// parseInput converts raw session bytes into actions. Handles arrow key
// escape sequences, space, Q, and Ctrl-C.
func parseInput(data []byte) []action {
	var out []action
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				out = append(out, actionSpeedUp)
			case 'B':
				out = append(out, actionSpeedDown)
			case 'C':
				out = append(out, actionMoreLines)
			case 'D':
				out = append(out, actionFewerLines)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case ' ':
			out = append(out, actionPause)
		case 'q', 'Q':
			out = append(out, actionQuit)
		case 3: // Ctrl-C
			out = append(out, actionQuit)
		}
		i += size
	}
	return out
}
