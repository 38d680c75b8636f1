package colorize

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
)

const sample = "040000 3E 41             >A     LD A,&41"

func TestLineDisabled(t *testing.T) {
	t.Setenv(NoColorEnv, "1")
	if got := Line(sample); got != sample {
		t.Errorf("got %q", got)
	}
	if got, err := Assembly("NOP"); err != nil || got != "NOP" {
		t.Errorf("Assembly = %q, %v", got, err)
	}
}

func TestLinePreservesText(t *testing.T) {
	t.Setenv(NoColorEnv, "")
	got := Line(sample)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if plain := Strip(got); plain != sample {
		t.Errorf("stripped line differs:\n got  %q\n want %q", plain, sample)
	}
}

func TestLineShort(t *testing.T) {
	t.Setenv(NoColorEnv, "")
	if plain := Strip(Line("RET")); strings.TrimSpace(plain) != "RET" {
		t.Errorf("got %q", plain)
	}
}

func TestStyleRegistered(t *testing.T) {
	if styles.Get("disasm-dark") != DisasmDark {
		t.Error("disasm-dark style is not registered")
	}
}

func TestStrip(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"\x1b[38;2;79;79;79m040000\x1b[0m NOP", "040000 NOP"},
		{"", ""},
		{"\x1b[2Kerase", "erase"},
		{"\x1b]8;;https://example.com\x07link\x1b]8;;\x07", "link"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
