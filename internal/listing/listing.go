// Package listing formats decoded instructions as fixed-column text lines:
// address, raw bytes, ASCII rendering and mnemonic.
package listing

import (
	"fmt"
	"io"
	"strings"

	"ez80dis/internal/disasm"
)

// MaxBytes is the number of byte columns reserved on every line.
const MaxBytes = 6

// Line formats one instruction:
//
//	040000 3E 41             >A     LD A,&41
func Line(in disasm.Inst) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%06X ", in.Addr)
	sb.WriteString(Hex(in.Raw))
	sb.WriteString(ASCII(in.Raw))
	sb.WriteByte(' ')
	sb.WriteString(in.Text)
	return sb.String()
}

// Hex renders bytes as "XX " groups padded to MaxBytes columns.
func Hex(raw []byte) string {
	var sb strings.Builder
	for _, b := range raw {
		fmt.Fprintf(&sb, "%02X ", b)
	}
	if n := MaxBytes - len(raw); n > 0 {
		sb.WriteString(strings.Repeat("   ", n))
	}
	return sb.String()
}

// ASCII renders printable bytes (32-126) literally and others as '.',
// padded to MaxBytes columns.
func ASCII(raw []byte) string {
	var sb strings.Builder
	for _, b := range raw {
		if b > 31 && b < 127 {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
		}
	}
	if n := MaxBytes - len(raw); n > 0 {
		sb.WriteString(strings.Repeat(" ", n))
	}
	return sb.String()
}

// Write prints one line per instruction. decorate, when not nil, is applied
// to every line before it is written.
func Write(w io.Writer, s disasm.Stream, decorate func(string) string) error {
	for _, in := range s {
		line := Line(in)
		if decorate != nil {
			line = decorate(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// String returns the whole stream as text.
func String(s disasm.Stream) string {
	var sb strings.Builder
	_ = Write(&sb, s, nil)
	return sb.String()
}
