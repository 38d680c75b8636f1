package styles

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct{ name, want string }{
		{"charm", "charm"},
		{"vscode", "vscode"},
		{"", "vscode"},
		{"solarized", "vscode"},
	}
	for _, tt := range tests {
		if got := Lookup(tt.name).Name; got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMarkdownStyleTitle(t *testing.T) {
	if bg := MarkdownStyle(Charm).H1.BackgroundColor; bg == nil || *bg != Charm.TitleBg {
		t.Errorf("charm title background = %v", bg)
	}
	if bg := MarkdownStyle(VSCodeDark).H1.BackgroundColor; bg != nil {
		t.Errorf("vscode title has a background: %q", *bg)
	}
}

func TestRendererRendersTable(t *testing.T) {
	for _, theme := range []string{"vscode", "charm"} {
		t.Run(theme, func(t *testing.T) {
			t.Setenv(ThemeEnv, "")
			r := GetMarkdownRenderer(theme, 80)
			if r == nil {
				t.Fatal("nil renderer")
			}
			out, err := r.Render("| op | text |\n|---|---|\n| 00 | NOP |\n")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, "NOP") {
				t.Errorf("rendered table lost its cells: %q", out)
			}
		})
	}
}
