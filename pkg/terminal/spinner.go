package terminal

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Spinner is a live animation bound to one anchor line.
// A Spinner returned for a non-interactive output is inert.
type Spinner struct {
	line  int
	label string
	text  string

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// Active reports whether the spinner has a running ticker.
func (s *Spinner) Active() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// StartSpinner appends text as a new line and animates it until StopSpinner.
func (r *Renderer) StartSpinner(label, text string) *Spinner {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp := &Spinner{line: r.state.lines, label: label, text: text}
	r.appendLocked(r.out, label, text)
	if !r.interactive {
		return sp
	}

	io.WriteString(r.out, ansi.HideCursor)
	sp.done = make(chan struct{})
	sp.stopped = make(chan struct{})
	go r.spin(sp)
	return sp
}

// StopSpinner stops the animation and rewrites the anchor line with finalText.
// An empty finalText leaves the initial text in place. Calling it again on the
// same Spinner does nothing.
func (r *Renderer) StopSpinner(sp *Spinner, label, finalText string) {
	sp.stopOnce.Do(func() {
		if sp.done != nil {
			close(sp.done)
			<-sp.stopped
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.interactive {
			if finalText != "" {
				r.rewriteLocked(PreviousLine, header(label)+finalText)
			}
			return
		}

		text := finalText
		if text == "" {
			label, text = sp.label, sp.text
		}
		r.rewriteLocked(r.state.lines-sp.line, header(label)+text)
		io.WriteString(r.out, ansi.ShowCursor)
	})
}

func (r *Renderer) spin(sp *Spinner) {
	defer close(sp.stopped)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-sp.done:
			return
		case <-ticker.C:
			i = (i + 1) % len(r.frames)
			r.mu.Lock()
			r.rewriteLocked(r.state.lines-sp.line, header(sp.label)+r.frame(r.frames[i], sp.text))
			r.mu.Unlock()
		}
	}
}

func (r *Renderer) frame(frame, text string) string {
	styled := r.frameStyle.Render(frame)
	if r.framesAfter {
		return text + " " + styled
	}
	return styled + " " + text
}
