// Package output renders command results for terminals, pipes and machines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode selects how results are written.
type Mode string

// Output modes.
const (
	ModeAuto   Mode = "auto"   // pretty on a terminal, text otherwise
	ModeText   Mode = "text"   // plain "path:row:col: CODE text" lines
	ModeJSON   Mode = "json"   // machine-readable
	ModePretty Mode = "pretty" // styled for humans
)

// Modes lists the accepted mode names.
var Modes = []Mode{ModeAuto, ModeText, ModeJSON, ModePretty}

// ParseMode validates a mode name. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want auto, text, json or pretty)", s)
}

// ModeNames returns the accepted mode names, for flag completion.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return names
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
