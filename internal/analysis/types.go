// Package analysis collects branch targets from a decoded instruction
// stream and annotates them with a chain of detectors.
package analysis

import (
	"fmt"
	"strings"

	"ez80dis/internal/disasm"
)

// Kind classifies a target by how it is reached.
type Kind int

const (
	KindJump Kind = iota
	KindCall
	KindRestart
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindRestart:
		return "rst"
	default:
		return "jump"
	}
}

// MarshalText lets targets serialise their kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Target is an address reached by one or more instructions in a stream.
type Target struct {
	Addr   uint32
	Kind   Kind
	Refs   []uint32
	Inside bool
	Label  string
}

// Address formats Addr the way listings do.
func (t Target) Address() string {
	return fmt.Sprintf("&%06X", t.Addr)
}

// kindOf reports how inst reaches its target.
func kindOf(inst disasm.Inst) Kind {
	switch {
	case inst.Flow == disasm.FlowCall && strings.HasPrefix(inst.Text, "RST"):
		return KindRestart
	case inst.Flow == disasm.FlowCall:
		return KindCall
	default:
		return KindJump
	}
}
