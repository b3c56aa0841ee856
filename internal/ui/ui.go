// Package ui provides terminal color support for gridfile.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode parses auto, always, or never. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
	}
}

type contextKey string

const uiContextKey contextKey = "ui"

// UI writes styled status lines. Status output goes to stderr so that
// stdout carries only data.
type UI struct {
	out   *termenv.Output
	color bool
}

// New creates a UI writing to w. It respects the NO_COLOR environment
// variable.
func New(w io.Writer, mode ColorMode) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		profile = termenv.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	case ColorAuto:
		if isTerminal(w) {
			profile = termenv.ColorProfile()
		}
	}

	return &UI{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		color: profile != termenv.Ascii,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithUI returns a new context with the UI attached.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, uiContextKey, u)
}

// FromContext retrieves the UI from ctx, falling back to an uncolored UI on
// stderr.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(uiContextKey).(*UI); ok {
		return u
	}
	return New(os.Stderr, ColorNever)
}

// Color reports whether output is styled.
func (u *UI) Color() bool { return u.color }

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	u.line("✓ ", termenv.ANSIGreen, format, args...)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.line("⚠ ", termenv.ANSIYellow, format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.line("✗ ", termenv.ANSIRed, format, args...)
}

func (u *UI) line(prefix string, c termenv.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(prefix+msg).Foreground(c))
}

// HeaderStyle returns a function that renders table headers in bold cyan,
// or nil when color is off.
func (u *UI) HeaderStyle() func(string) string {
	if !u.color {
		return nil
	}
	return func(s string) string {
		return u.out.String(s).Bold().Foreground(termenv.ANSICyan).String()
	}
}
