package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Status shows a spinner line while a request runs. The animation goes to
// an interactive stderr only; final lines go to out so they can be piped.
type Status struct {
	out   io.Writer
	spin  io.Writer
	theme *Theme

	mu      sync.Mutex
	msg     string
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// StartStatus begins a spinner with msg. animate should be true only when
// spin is a terminal.
func StartStatus(out, spin io.Writer, animate bool, theme *Theme, msg string) *Status {
	s := &Status{out: out, spin: spin, theme: theme, msg: msg}
	if animate && spin != nil {
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		s.running = true
		go s.loop(spinner.MiniDot)
	}
	return s
}

func (s *Status) loop(sp spinner.Spinner) {
	defer close(s.done)
	ticker := time.NewTicker(sp.FPS)
	defer ticker.Stop()

	frame := 0
	for {
		s.mu.Lock()
		fmt.Fprintf(s.spin, "\r\033[K%s %s", s.theme.Accent(sp.Frames[frame]), s.msg)
		s.mu.Unlock()
		frame = (frame + 1) % len(sp.Frames)

		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
	}
}

// Update changes the spinner text.
func (s *Status) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop clears the spinner without printing anything.
func (s *Status) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	<-s.done
	fmt.Fprint(s.spin, "\r\033[K")
}

// Succeed stops the spinner and prints a success line.
func (s *Status) Succeed(msg string) {
	s.finish("✔", s.theme.Success(msg))
}

// Fail stops the spinner and prints a failure line.
func (s *Status) Fail(msg string) {
	s.finish("✖", s.theme.Error(msg))
}

// Info stops the spinner and prints a neutral line.
func (s *Status) Info(msg string) {
	s.finish("ℹ", msg)
}

func (s *Status) finish(symbol, msg string) {
	s.Stop()
	fmt.Fprintf(s.out, "%s %s\n", symbol, msg)
}
