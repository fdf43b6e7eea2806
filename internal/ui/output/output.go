// Package output renders run results, measure metadata and cache contents
// for terminals.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for w. NO_COLOR disables colors, and
// writers that are not terminals get plain text unless CLICOLOR_FORCE is set.
func Profile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return termenv.ANSI256
	}
	if f, ok := w.(*os.File); ok {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	return termenv.Ascii
}

// New creates a termenv.Output on w, or stderr when w is nil.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile(w)), termenv.WithTTY(true))
}
