// Package main provides terminal output helpers for the mat configurator CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// UI writes human-readable output, or nothing but JSON in json mode.
type UI struct {
	out      io.Writer
	progress *mpb.Progress
	jsonMode bool
}

// NewUI creates a new UI instance.
func NewUI(out io.Writer, jsonMode bool) *UI {
	ui := &UI{out: out, jsonMode: jsonMode}
	if !jsonMode && IsTerminal() {
		ui.progress = mpb.New(mpb.WithWidth(48), mpb.WithOutput(os.Stderr))
	}
	return ui
}

// Close waits for progress bars to finish rendering.
func (ui *UI) Close() {
	if ui.progress != nil {
		ui.progress.Wait()
	}
}

// JSON writes v as indented JSON.
func (ui *UI) JSON(v interface{}) error {
	enc := json.NewEncoder(ui.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (ui *UI) line(c *color.Color, symbol, format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	c.Fprintf(ui.out, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	ui.line(color.New(color.FgGreen), "✓", format, args...)
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	ui.line(color.New(color.FgRed), "✗", format, args...)
}

// Warning prints a warning message.
func (ui *UI) Warning(format string, args ...interface{}) {
	ui.line(color.New(color.FgYellow), "⚠", format, args...)
}

// Info prints an info message.
func (ui *UI) Info(format string, args ...interface{}) {
	ui.line(color.New(color.FgCyan), "ℹ", format, args...)
}

// KeyValue prints a key-value pair.
func (ui *UI) KeyValue(key string, value interface{}) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgYellow).Fprintf(ui.out, "  %s: ", key)
	fmt.Fprintf(ui.out, "%v\n", value)
}

// Section prints a section header.
func (ui *UI) Section(title string) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgMagenta, color.Bold).Fprintf(ui.out, "\n━━━ %s ━━━\n\n", strings.ToUpper(title))
}

// Table prints rows under headers with padded columns.
func (ui *UI) Table(headers []string, rows [][]string) {
	if ui.jsonMode || len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	header := color.New(color.FgCyan, color.Bold)
	for i, h := range headers {
		header.Fprint(ui.out, pad(h, widths[i]))
	}
	fmt.Fprintln(ui.out)
	for i := range headers {
		fmt.Fprint(ui.out, pad(strings.Repeat("─", widths[i]), widths[i]))
	}
	fmt.Fprintln(ui.out)
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprint(ui.out, pad(cell, widths[i]))
			}
		}
		fmt.Fprintln(ui.out)
	}
}

// pad left-aligns s in a column of width runes plus a two-space gutter.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len([]rune(s))+2)
}

// ProgressBar creates a counter bar, or nil when output is not a terminal.
func (ui *UI) ProgressBar(name string, total int64) *mpb.Bar {
	if ui.progress == nil {
		return nil
	}
	return ui.progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DSyncSpaceR}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 8}), " done"),
		),
	)
}

// Spinner wraps a spinner for indeterminate work.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner starts a spinner on stderr. It is inert in json mode or when
// stderr is not a terminal.
func (ui *UI) NewSpinner(message string) *Spinner {
	if ui.jsonMode || !IsTerminal() {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr
	s.Start()
	return &Spinner{s: s}
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	if s.s != nil {
		s.s.Stop()
	}
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
