// Package output provides utilities for creating termenv.Output with consistent
// color profile handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for log and report output.
// NO_COLOR selects Ascii. CI runners are not TTYs but render ANSI, so CI selects ANSI.
// Otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("CI") != "" {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
