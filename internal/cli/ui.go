package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorBlue  = lipgloss.Color("75")  // Light blue - links
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// =============================================================================
// Styled Output
// =============================================================================

// ui renders styled text for one destination. Color support is detected on w,
// so a buffer or pipe gets plain text.
type ui struct {
	w io.Writer

	title     lipgloss.Style
	link      lipgloss.Style
	dim       lipgloss.Style
	value     lipgloss.Style
	key       lipgloss.Style
	iconOK    lipgloss.Style
	iconError lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:         w,
		title:     r.NewStyle().Bold(true).Foreground(colorCyan),
		link:      r.NewStyle().Foreground(colorBlue).Underline(true),
		dim:       r.NewStyle().Foreground(colorDim),
		value:     r.NewStyle().Foreground(colorWhite),
		key:       r.NewStyle().Foreground(colorGray).Width(14),
		iconOK:    r.NewStyle().Foreground(colorGreen),
		iconError: r.NewStyle().Foreground(colorRed),
	}
}

// success formats a success status text.
func (u *ui) success(format string, args ...any) string {
	return u.iconOK.Render(iconSuccess) + " " + fmt.Sprintf(format, args...)
}

// failure formats an error status text.
func (u *ui) failure(format string, args ...any) string {
	return u.iconError.Render(iconError) + " " + fmt.Sprintf(format, args...)
}

// printTitle prints a heading.
func (u *ui) printTitle(text string) {
	fmt.Fprintln(u.w, u.title.Render(text))
}

// printKeyValue prints a labeled value. Empty values are skipped.
func (u *ui) printKeyValue(key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(u.w, u.key.Render(key)+" "+u.value.Render(value))
}

// printLink prints a labeled URL. Empty URLs are skipped.
func (u *ui) printLink(key, url string) {
	if url == "" {
		return
	}
	fmt.Fprintln(u.w, u.key.Render(key)+" "+u.link.Render(url))
}

// printList prints a labeled, comma-separated list, truncated after limit items.
func (u *ui) printList(key string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	shown := items
	suffix := ""
	if limit > 0 && len(items) > limit {
		shown = items[:limit]
		suffix = u.dim.Render(fmt.Sprintf(" (+%d more)", len(items)-limit))
	}
	fmt.Fprintln(u.w, u.key.Render(key)+" "+u.value.Render(strings.Join(shown, ", "))+suffix)
}
