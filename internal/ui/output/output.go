// Package output decides how much color terminal output may use.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for writing to w. NO_COLOR always disables
// color; otherwise the profile follows the terminal behind w and CLICOLOR_FORCE.
func Profile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// New creates a termenv.Output for w using Profile.
// If w is nil, os.Stderr is used.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile(w)))
}
