package disasm

// maxInstLen is the longest eZ80 encoding: mode select, prefix, opcode and a
// 24-bit word.
const maxInstLen = 6

// fetcher reads operand bytes for one instruction. The first failed read is
// kept in err and every later read returns zero, so decode stages can fetch
// freely and the driver checks err once per pass.
type fetcher struct {
	mem  Memory
	ctx  *Context
	pc   uint32
	inst *Inst
	err  error

	// disp holds a displacement fetched ahead of the opcode (DD CB d op).
	disp    int8
	hasDisp bool
}

func (f *fetcher) byte() byte {
	if f.err != nil {
		return 0
	}
	b, err := f.mem.ByteAt(f.pc)
	if err != nil {
		f.err = err
		return 0
	}
	f.pc++
	f.inst.Raw = append(f.inst.Raw, b)
	return b
}

// signed reads a two's-complement displacement.
func (f *fetcher) signed() int8 {
	return int8(f.byte())
}

// displacement returns the index displacement, using one fetched ahead of
// the opcode when there is one.
func (f *fetcher) displacement() int8 {
	if f.hasDisp {
		return f.disp
	}
	return f.signed()
}

// relative reads a displacement and returns the branch target, relative to
// the address after the displacement byte.
func (f *fetcher) relative() uint32 {
	d := f.signed()
	return uint32(int64(f.pc)+int64(d)) & 0xFFFFFF
}

// word reads a little-endian word. In Z80 mode without a long-immediate
// suffix only two bytes are read and bits 16-23 come from the cursor.
func (f *fetcher) word() uint32 {
	lo := uint32(f.byte())
	mid := uint32(f.byte())
	var hi uint32
	if f.ctx.longWords() {
		hi = uint32(f.byte())
	} else {
		hi = (f.pc >> 16) & 0xFF
	}
	return lo | mid<<8 | hi<<16
}
