// Package styles holds the glamour themes used for the opcode map and the
// viewer header.
package styles

import (
	"github.com/charmbracelet/x/exp/charmtone"
)

// Palette is the set of colours a markdown theme draws from.
type Palette struct {
	Name    string
	Text    string
	Heading string
	Title   string
	TitleBg string
	Code    string
	Rule    string
	Link    string
	Quote   string
	Empty   string // unrepresented opcode cells
}

// VSCodeDark mirrors the VS Code dark editor colours.
var VSCodeDark = Palette{
	Name:    "vscode",
	Text:    "#D4D4D4",
	Heading: "#569CD6",
	Title:   "#569CD6",
	Code:    "#EACD53",
	Rule:    "#858585",
	Link:    "#4FC1FF",
	Quote:   "#6A9955",
	Empty:   "#5A5A5A",
}

// Charm uses the charmtone palette.
var Charm = Palette{
	Name:    "charm",
	Text:    charmtone.Smoke.Hex(),
	Heading: charmtone.Malibu.Hex(),
	Title:   charmtone.Zest.Hex(),
	TitleBg: charmtone.Charple.Hex(),
	Code:    charmtone.Guac.Hex(),
	Rule:    charmtone.Charcoal.Hex(),
	Link:    charmtone.Zinc.Hex(),
	Quote:   charmtone.Squid.Hex(),
	Empty:   charmtone.Cheeky.Hex(),
}

// ThemeEnv selects the palette by name.
const ThemeEnv = "EZ80DIS_THEME"

// Lookup returns the palette called name, falling back to VSCodeDark.
func Lookup(name string) Palette {
	if name == Charm.Name {
		return Charm
	}
	return VSCodeDark
}
