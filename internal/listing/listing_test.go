package listing

import (
	"bytes"
	"strings"
	"testing"

	"ez80dis/internal/disasm"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   disasm.Inst
		want string
	}{
		{
			name: "two bytes",
			in:   disasm.Inst{Addr: 0x040000, Raw: []byte{0x3E, 0x41}, Text: "LD A,&41"},
			want: "040000 3E 41             >A     LD A,&41",
		},
		{
			name: "full width",
			in:   disasm.Inst{Addr: 0x1000, Raw: []byte{0x5B, 0xED, 0x43, 0x00, 0x10, 0x04}, Text: "LD.LIL (&041000),BC"},
			want: "001000 5B ED 43 00 10 04 [.C... LD.LIL (&041000),BC",
		},
		{
			name: "unrepresented opcode",
			in:   disasm.Inst{Addr: 0x12, Raw: []byte{0xED, 0xA5}},
			want: "000012 ED A5             ..     ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.in); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestASCII(t *testing.T) {
	if got := ASCII([]byte{0x1F, 0x20, 0x7E, 0x7F}); got != ". ~.  " {
		t.Errorf("got %q", got)
	}
}

func TestWrite(t *testing.T) {
	s := disasm.Stream{
		{Addr: 0, Raw: []byte{0x00}, Text: "NOP"},
		{Addr: 1, Raw: []byte{0xC9}, Text: "RET"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, s, strings.ToLower); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[1], " ret") {
		t.Errorf("decorator not applied: %q", lines[1])
	}
	if String(s) != Line(s[0])+"\n"+Line(s[1])+"\n" {
		t.Error("String does not match Line output")
	}
}
