// Package disasm decodes eZ80/Z80 machine code into instructions.
//
// Decoding is table driven: each opcode page (base, DD, FD, CB, DD CB, FD CB
// and ED) is a 256-entry table of templates built once from the canonical
// x/y/z/p/q bit-field decomposition of the opcode byte. A Decoder walks the
// prefix chain of one instruction with an explicit state loop and renders the
// final template, fetching operands as the template asks for them.
package disasm

// Flow classifies instructions that transfer control to a known address.
type Flow uint8

const (
	FlowNone Flow = iota
	FlowJump      // JP nn, JP cc,nn, JR, DJNZ
	FlowCall      // CALL nn, CALL cc,nn, RST
)

func (f Flow) String() string {
	switch f {
	case FlowJump:
		return "jump"
	case FlowCall:
		return "call"
	default:
		return ""
	}
}

// Inst is one decoded instruction.
type Inst struct {
	Addr      uint32      // address of the first byte, including prefixes
	Raw       []byte      // bytes consumed, in stream order
	Text      string      // mnemonic text, empty for unrepresented opcodes
	Suffix    Suffix      // addressing-mode suffix selected by a mode opcode
	Registers RegisterSet // register set selected by a DD/FD prefix
	Flow      Flow
	Target    uint32 // branch target, valid when Flow != FlowNone
}

// Len returns the encoded length of the instruction in bytes.
func (i Inst) Len() int {
	return len(i.Raw)
}

// Next returns the address following the instruction.
func (i Inst) Next() uint32 {
	return i.Addr + uint32(len(i.Raw))
}

// Stream is a linear sequence of instructions.
type Stream []Inst

// Size returns the total number of bytes covered by the stream.
func (s Stream) Size() int {
	n := 0
	for _, in := range s {
		n += in.Len()
	}
	return n
}
