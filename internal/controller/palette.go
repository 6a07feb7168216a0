package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI background sequences used to highlight names.
const (
	matchColor        = "\033[41m"
	substitutionColor = "\033[42m"
	resetColor        = "\033[49m"
)

// ColorMode controls ANSI color output.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use auto, always or never)", value)
	}
}

// Palette holds the markers placed around highlighted spans. The zero value
// prints plain text.
type Palette struct {
	Match        string
	Substitution string
	Reset        string
}

// ColorPalette returns the ANSI palette.
func ColorPalette() Palette {
	return Palette{Match: matchColor, Substitution: substitutionColor, Reset: resetColor}
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool {
	return p.Reset != ""
}

// ResolvePalette picks a palette for mode. Auto enables colors only when out
// is a terminal, NO_COLOR is unset and TERM is not "dumb".
func ResolvePalette(mode ColorMode, out io.Writer) Palette {
	switch mode {
	case ColorAlways:
		return ColorPalette()
	case ColorNever:
		return Palette{}
	}

	if IsTTY(out) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb" {
		return ColorPalette()
	}

	return Palette{}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
