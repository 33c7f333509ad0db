// Package terminal renders status output with in-place line rewrites and spinners.
//
// # Overview
//
// A [Renderer] owns an output stream and a [State] that counts the lines written so
// far. Lines are either permanent ([Renderer.AppendLine]) or live: a live line is
// addressed by its offset above the current cursor row and rewritten in place with
// [Renderer.UpdateLine] or [Renderer.UpdateLineWithLabel].
//
//	r := terminal.New(os.Stdout)
//	sp := r.StartSpinner("lodash", "Fetching metadata")
//	r.AppendLine("lodash", "Contacting registry")
//	r.UpdateLine("Getting package info of 'lodash' from registry", terminal.PreviousLine)
//	r.StopSpinner(sp, "lodash", "Fetched lodash@4.17.21")
//
// # Group Labels
//
// Every line may carry a group label, rendered as a "[label]: " header. An empty
// label writes no header.
//
// # Non-interactive Output
//
// When the output is not a terminal (a pipe, a file, a buffer) rewrites degrade to
// appends, spinners never start a ticker, and no escape sequences are written.
//
// # Concurrency
//
// Spinner ticks run on their own goroutine. Every write takes the renderer's lock so
// bytes never interleave, but the order between a tick and a caller's write is
// unspecified. Offsets are not bounds-checked: an offset larger than the number of
// lines written corrupts the display.
package terminal
