package styles

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

// MarkdownStyle builds a glamour style from p.
func MarkdownStyle(p Palette) ansi.StyleConfig {
	h1 := ansi.StylePrimitive{
		Prefix: "# ",
		Color:  stringPtr(p.Title),
		Bold:   boolPtr(true),
	}
	if p.TitleBg != "" {
		h1.Prefix = " "
		h1.Suffix = " "
		h1.BackgroundColor = stringPtr(p.TitleBg)
	}
	heading := func(prefix string) ansi.StyleBlock {
		return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: prefix, Color: stringPtr(p.Heading)}}
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.Text)},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.Quote), Italic: boolPtr(true)},
			Indent:         uintPtr(1),
			IndentToken:    stringPtr("│ "),
		},
		List: ansi.StyleList{LevelIndent: 2},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(p.Heading),
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{StylePrimitive: h1},
		H2: heading("## "),
		H3: heading("### "),
		H4: heading("#### "),
		H5: heading("##### "),
		H6: heading("###### "),
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
			Color:      stringPtr(p.Empty),
		},
		Emph:   ansi.StylePrimitive{Italic: boolPtr(true)},
		Strong: ansi.StylePrimitive{Bold: boolPtr(true)},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(p.Rule),
			Format: "\n────────────────────────────────────────\n",
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(p.Link),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{Color: stringPtr(p.Link)},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.Code)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.Text)},
				Margin:         uintPtr(1),
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.Text)},
			},
			CenterSeparator: stringPtr("┼"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
		Text: ansi.StylePrimitive{Color: stringPtr(p.Text)},
	}
}

// Renderer returns a glamour renderer for p wrapping at width.
func Renderer(p Palette, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(MarkdownStyle(p)),
		glamour.WithWordWrap(width),
	)
}

// GetMarkdownRenderer returns a renderer for the palette named by
// EZ80DIS_THEME, or theme when it is set.
func GetMarkdownRenderer(theme string, width int) *glamour.TermRenderer {
	if env := os.Getenv(ThemeEnv); env != "" {
		theme = env
	}
	r, _ := Renderer(Lookup(theme), width)
	return r
}
