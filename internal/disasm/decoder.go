package disasm

import "fmt"

// page is the opcode table the next byte is decoded against.
type page uint8

const (
	pageBase page = iota
	pageCB
	pageED
)

// Decoder decodes instructions from a Memory. A Decoder is not safe for
// concurrent use; give each goroutine its own.
type Decoder struct {
	mem Memory
	ctx Context
}

// NewDecoder returns a decoder reading mem with the given execution width.
func NewDecoder(mem Memory, w Width) *Decoder {
	return &Decoder{mem: mem, ctx: NewContext(w)}
}

// Width returns the execution width the decoder was created with.
func (d *Decoder) Width() Width {
	return d.ctx.Width
}

// Decode decodes the instruction at addr. The returned instruction holds
// every byte consumed, so Next gives the address of the following one. On
// a read error the partial instruction is returned with the error.
//
// Prefix state is walked with an explicit loop: a mode-select opcode may be
// followed by a prefix, a DD or FD prefix by a mode select or CB, and any
// other chaining ends the instruction with an empty mnemonic.
func (d *Decoder) Decode(addr uint32) (Inst, error) {
	d.ctx.reset()
	in := Inst{Addr: addr, Raw: make([]byte, 0, maxInstLen)}
	f := fetcher{mem: d.mem, ctx: &d.ctx, pc: addr, inst: &in}

	pg := pageBase
	moded, prefixed := false, false
	for {
		var t template
		switch pg {
		case pageCB:
			if d.ctx.registers != RegsHL {
				f.disp, f.hasDisp = f.signed(), true
			}
			t = cbTables[d.ctx.registers][f.byte()]
		case pageED:
			t = edTable[f.byte()]
		default:
			t = baseTables[d.ctx.registers][f.byte()]
		}
		if f.err != nil {
			return in, f.err
		}

		switch t.kind {
		case kindMode:
			if moded || pg != pageBase {
				return in, nil
			}
			moded = true
			d.ctx.suffix = t.suffix
			in.Suffix = t.suffix
			continue
		case kindPrefix:
			// CB may follow DD or FD; no other prefix may follow one.
			if prefixed && !(t.prefix == 0xCB && pg == pageBase) {
				return in, nil
			}
			prefixed = true
			switch t.prefix {
			case 0xCB:
				pg = pageCB
			case 0xED:
				pg = pageED
			case 0xDD:
				d.ctx.registers = RegsIX
			case 0xFD:
				d.ctx.registers = RegsIY
			}
			in.Registers = d.ctx.registers
			continue
		case kindNone:
			return in, nil
		}

		text, target := t.render(&f)
		if f.err != nil {
			return in, f.err
		}
		in.Text = text
		if t.flow != FlowNone {
			in.Flow = t.flow
			in.Target = target
		}
		return in, nil
	}
}

// Disassemble decodes instructions from addr until count bytes have been
// consumed. The last instruction may run past addr+count. On a read error
// the instructions decoded so far are returned with the error.
func (d *Decoder) Disassemble(addr uint32, count int) (Stream, error) {
	var out Stream
	for count > 0 {
		in, err := d.Decode(addr)
		if err != nil {
			return out, fmt.Errorf("decode at &%06X: %w", addr, err)
		}
		out = append(out, in)
		count -= in.Len()
		addr = in.Next()
	}
	return out, nil
}
