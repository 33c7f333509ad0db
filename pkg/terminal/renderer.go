package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// PreviousLine is the offset of the most recently written line.
const PreviousLine = 1

// DefaultInterval is the spinner tick interval.
const DefaultInterval = 80 * time.Millisecond

// DefaultFrames is the spinner animation cycle.
var DefaultFrames = []string{"-", "\\", "|", "/"}

var colorCyan = lipgloss.Color("36")

// State is the line bookkeeping shared by every write through a Renderer.
// It lives as long as the Renderer that owns it.
type State struct {
	lines int
}

// Lines returns the number of counted lines written so far.
func (s *State) Lines() int { return s.lines }

// Renderer writes status lines to a terminal.
type Renderer struct {
	mu sync.Mutex

	out         io.Writer
	errOut      io.Writer
	interactive bool
	state       *State

	frames      []string
	interval    time.Duration
	framesAfter bool
	frameStyle  lipgloss.Style
	exit        func(code int)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithInteractive overrides terminal detection on the output stream.
func WithInteractive(interactive bool) Option {
	return func(r *Renderer) { r.interactive = interactive }
}

// WithErrOut sets the stream used by AppendError. Defaults to os.Stderr.
func WithErrOut(w io.Writer) Option {
	return func(r *Renderer) { r.errOut = w }
}

// WithInterval sets the spinner tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithFrames replaces the spinner animation frames. An empty slice is ignored.
func WithFrames(frames ...string) Option {
	return func(r *Renderer) {
		if len(frames) > 0 {
			r.frames = frames
		}
	}
}

// WithFramesAfter renders the spinner frame after the message instead of before it.
func WithFramesAfter(after bool) Option {
	return func(r *Renderer) { r.framesAfter = after }
}

// WithExitFunc replaces os.Exit for ForceExit.
func WithExitFunc(exit func(code int)) Option {
	return func(r *Renderer) { r.exit = exit }
}

// New creates a Renderer writing to out.
// The output is interactive when it is a terminal file descriptor.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:         out,
		errOut:      os.Stderr,
		interactive: isTerminal(out),
		state:       &State{},
		frames:      DefaultFrames,
		interval:    DefaultInterval,
		exit:        os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.frameStyle = lipgloss.NewRenderer(out).NewStyle().Foreground(colorCyan)
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether in-place rewrites are possible.
func (r *Renderer) Interactive() bool { return r.interactive }

// Lines returns the number of counted lines written so far.
func (r *Renderer) Lines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Lines()
}

// AppendLine writes a new line to the output and counts it.
func (r *Renderer) AppendLine(label, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendLocked(r.out, label, text)
}

// AppendError writes a new line to the error stream and counts it.
func (r *Renderer) AppendError(label, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendLocked(r.errOut, label, text)
}

// UpdateLine rewrites the line offset rows above the cursor.
func (r *Renderer) UpdateLine(text string, offset int) {
	r.UpdateLineWithLabel(text, offset, "")
}

// UpdateLineWithLabel rewrites the line offset rows above the cursor with a
// group label header.
func (r *Renderer) UpdateLineWithLabel(text string, offset int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rewriteLocked(offset, header(label)+text)
}

// ForceExit clears the live status lines, restores the cursor and exits the
// process with status 0. hasSecondaryLine clears one extra line for callers that
// keep a detail line under a spinner.
func (r *Renderer) ForceExit(hasSecondaryLine bool) {
	r.mu.Lock()
	if r.interactive {
		moveAndClear := func() {
			io.WriteString(r.out, ansi.CursorUp(1)+ansi.EraseEntireLine)
		}
		io.WriteString(r.out, "\r"+ansi.EraseEntireLine)
		r.rewriteLocked(PreviousLine, "")
		if hasSecondaryLine {
			r.rewriteLocked(2, "")
			moveAndClear()
		}
		moveAndClear()
		io.WriteString(r.out, ansi.ShowCursor)
	}
	r.mu.Unlock()
	r.exit(0)
}

func (r *Renderer) appendLocked(w io.Writer, label, text string) {
	fmt.Fprintf(w, "%s%s\n", header(label), text)
	r.state.lines++
}

// rewriteLocked moves up offset rows, replaces that row and moves back down.
// Non-interactive outputs get a plain appended line instead.
func (r *Renderer) rewriteLocked(offset int, line string) {
	if !r.interactive {
		fmt.Fprintln(r.out, line)
		return
	}

	var b strings.Builder
	if offset > 0 {
		b.WriteString(ansi.CursorUp(offset))
	}
	b.WriteString("\r")
	b.WriteString(ansi.EraseEntireLine)
	b.WriteString(line)
	if offset > 0 {
		b.WriteString(ansi.CursorDown(offset))
	}
	b.WriteString("\r")
	io.WriteString(r.out, b.String())
}

func header(label string) string {
	if label == "" {
		return ""
	}
	return "[" + label + "]: "
}
