package disasm

import "fmt"

// Width is the execution width of the CPU, which decides the size of word
// operands.
type Width uint8

const (
	// Z80Mode uses 16-bit words. Bits 16-23 of displayed addresses come
	// from the segment of the instruction itself.
	Z80Mode Width = iota
	// ADLMode uses 24-bit words.
	ADLMode
)

func (w Width) String() string {
	if w == ADLMode {
		return "adl"
	}
	return "z80"
}

// ParseWidth maps the numeric mode flag (0 or 1) onto a Width.
func ParseWidth(v int64) (Width, error) {
	switch v {
	case 0:
		return Z80Mode, nil
	case 1:
		return ADLMode, nil
	}
	return Z80Mode, fmt.Errorf("invalid execution width %d: want 0 (Z80) or 1 (ADL)", v)
}

// Suffix is the eZ80 addressing-mode suffix of one instruction.
type Suffix uint8

const (
	SuffixNone Suffix = iota
	SuffixSIS
	SuffixLIS
	SuffixSIL
	SuffixLIL
)

var suffixNames = [...]string{"", ".SIS", ".LIS", ".SIL", ".LIL"}

func (s Suffix) String() string {
	if int(s) < len(suffixNames) {
		return suffixNames[s]
	}
	return ""
}

// LongImmediate reports whether the suffix forces 24-bit word operands.
func (s Suffix) LongImmediate() bool {
	return s == SuffixSIL || s == SuffixLIL
}

// RegisterSet selects the register names used for H, L and (HL) operands.
type RegisterSet uint8

const (
	RegsHL RegisterSet = iota
	RegsIX
	RegsIY
)

var registerSetNames = [...]string{"HL", "IX", "IY"}

func (r RegisterSet) String() string {
	return registerSetNames[r]
}

// Context carries the decode state. Width is fixed for a run; the suffix
// and register set are reset at the start of every instruction.
type Context struct {
	Width     Width
	suffix    Suffix
	registers RegisterSet
}

// NewContext returns a context for the given execution width.
func NewContext(w Width) Context {
	return Context{Width: w}
}

func (c *Context) reset() {
	c.suffix = SuffixNone
	c.registers = RegsHL
}

// longWords reports whether word operands occupy three bytes.
func (c *Context) longWords() bool {
	return c.Width == ADLMode || c.suffix.LongImmediate()
}
