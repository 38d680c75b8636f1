package disasm

import (
	"fmt"
	"strings"
)

type kind uint8

const (
	kindNone   kind = iota // unrepresented opcode
	kindOp                 // complete instruction
	kindPrefix             // CB, DD, ED or FD
	kindMode               // eZ80 addressing-mode select
)

// template describes one opcode table cell. Operand tokens in text are
// rendered left to right, fetching operand bytes as they are met:
//
//	{s}   addressing-mode suffix (empty when none is active)
//	{n}   8-bit immediate, &XX
//	{nn}  word, &XXXXXX
//	{e}   relative branch target, &XXXXXX
//	{d}   signed index displacement, +5 or -3
type template struct {
	kind   kind
	text   string
	flow   Flow
	target uint32 // fixed target for RST
	fixed  bool
	prefix byte   // for kindPrefix
	suffix Suffix // for kindMode
}

func op(text string) template {
	return template{kind: kindOp, text: text}
}

func opf(format string, args ...any) template {
	return op(fmt.Sprintf(format, args...))
}

func jump(text string) template {
	return template{kind: kindOp, text: text, flow: FlowJump}
}

func call(text string) template {
	return template{kind: kindOp, text: text, flow: FlowCall}
}

func restart(vector uint32) template {
	return template{kind: kindOp, text: fmt.Sprintf("RST{s} &%02X", vector), flow: FlowCall, target: vector, fixed: true}
}

func prefixed(b byte) template {
	return template{kind: kindPrefix, prefix: b}
}

func modeSelect(s Suffix) template {
	return template{kind: kindMode, suffix: s}
}

var none = template{}

// render expands the operand tokens, fetching operands through f. It
// returns the text and, for flow instructions, the branch target.
func (t template) render(f *fetcher) (string, uint32) {
	var sb strings.Builder
	var target uint32
	s := t.text
	for {
		i := strings.IndexByte(s, '{')
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			sb.WriteString(s[i:])
			break
		}
		j += i
		switch s[i+1 : j] {
		case "s":
			sb.WriteString(f.ctx.suffix.String())
		case "n":
			fmt.Fprintf(&sb, "&%02X", f.byte())
		case "nn":
			target = f.word()
			fmt.Fprintf(&sb, "&%06X", target)
		case "e":
			target = f.relative()
			fmt.Fprintf(&sb, "&%06X", target)
		case "d":
			fmt.Fprintf(&sb, "%+d", f.displacement())
		}
		s = s[j+1:]
	}
	if t.fixed {
		target = t.target
	}
	return sb.String(), target
}

var placeholders = strings.NewReplacer("{s}", "", "{nn}", "nn", "{n}", "n", "{e}", "e", "{d}", "+d")

// String returns the template as it appears in an opcode map.
func (t template) String() string {
	switch t.kind {
	case kindOp:
		return placeholders.Replace(t.text)
	case kindPrefix:
		return fmt.Sprintf("prefix %02X", t.prefix)
	case kindMode:
		return t.suffix.String()
	}
	return ""
}
