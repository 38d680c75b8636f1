// Package colorize highlights listing lines for terminal output.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"ez80dis/internal/listing"
)

// NoColorEnv disables colour output when set to any non-empty value.
const NoColorEnv = "EZ80DIS_NO_COLOR"

// Column widths of a listing line, separator included.
const (
	addrWidth  = 7
	bytesWidth = 3 * listing.MaxBytes
	asciiWidth = listing.MaxBytes + 1
)

var (
	addrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F4F4F"))
	bytesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C9C9D"))
	asciiStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EACD53"))
)

// Enabled reports whether colour output is allowed by the environment.
func Enabled() bool {
	return os.Getenv(NoColorEnv) == ""
}

func getAssemblyLexer() chroma.Lexer {
	for _, name := range []string{"z80", "nasm", "gas"} {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

func getDisasmStyle() *chroma.Style {
	for _, name := range []string{"disasm-dark", "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func getTerminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Assembly highlights a block of mnemonics. The input is returned unchanged
// when colour is disabled or no assembly lexer is available.
func Assembly(code string) (string, error) {
	if !Enabled() {
		return code, nil
	}
	lexer := getAssemblyLexer()
	if lexer == nil {
		return code, nil
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}
	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getDisasmStyle(), iterator); err != nil {
		return code, err
	}
	return buf.String(), nil
}

// Line colours the columns of one listing line: the address dim, the bytes
// and ASCII columns in their own colours and the mnemonic through chroma.
// Lines shorter than the fixed columns are highlighted as plain assembly.
func Line(line string) string {
	if !Enabled() {
		return line
	}
	fixed := addrWidth + bytesWidth + asciiWidth
	if len(line) < fixed || !isHex(line[:addrWidth-1]) {
		out, err := Assembly(line)
		if err != nil {
			return line
		}
		return out
	}

	addr := line[:addrWidth]
	raw := line[addrWidth : addrWidth+bytesWidth]
	ascii := line[addrWidth+bytesWidth : fixed]
	text := line[fixed:]

	var sb strings.Builder
	sb.WriteString(addrStyle.Render(addr))
	sb.WriteString(bytesStyle.Render(raw))
	sb.WriteString(asciiStyle.Render(ascii))
	if text != "" {
		if out, err := Assembly(text); err == nil {
			text = strings.ReplaceAll(out, "\n", "")
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !((ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')) {
			return false
		}
	}
	return s != ""
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	return ansi.Strip(s)
}
