// Package elfxtest builds small ELF32 executables for tests.
package elfxtest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"

	"ez80dis/internal/elfx"
)

const (
	ehdrSize = 52
	phdrSize = 32
	shdrSize = 40
	symSize  = 16
)

// Build returns a little-endian EM_Z80 executable with one PT_LOAD segment
// per entry of segs and a .symtab holding syms. Symbols are attached to the
// first segment's section.
func Build(entry uint32, segs []elfx.Segment, syms []elfx.Symbol) []byte {
	le := binary.LittleEndian

	// Layout: header, program headers, segment data, symtab, strtab,
	// shstrtab, section headers.
	off := uint32(ehdrSize + phdrSize*len(segs))
	dataOff := make([]uint32, len(segs))
	var data bytes.Buffer
	for i, s := range segs {
		dataOff[i] = off + uint32(data.Len())
		data.Write(s.Data)
	}
	off += uint32(data.Len())

	strtab := []byte{0}
	var symtab bytes.Buffer
	symtab.Write(make([]byte, symSize))
	for _, s := range syms {
		name := uint32(len(strtab))
		strtab = append(append(strtab, s.Name...), 0)
		info := byte(elf.STB_GLOBAL)<<4 | byte(elf.STT_OBJECT)
		if s.Func {
			info = byte(elf.STB_GLOBAL)<<4 | byte(elf.STT_FUNC)
		}
		var ent [symSize]byte
		le.PutUint32(ent[0:], name)
		le.PutUint32(ent[4:], s.Addr)
		ent[12] = info
		le.PutUint16(ent[14:], 1)
		symtab.Write(ent[:])
	}
	symOff := off
	strOff := symOff + uint32(symtab.Len())

	shstr := []byte("\x00.text\x00.symtab\x00.strtab\x00.shstrtab\x00")
	shstrOff := strOff + uint32(len(strtab))
	shOff := shstrOff + uint32(len(shstr))

	var out bytes.Buffer
	hdr := make([]byte, ehdrSize)
	copy(hdr, elf.ELFMAG)
	hdr[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	le.PutUint16(hdr[16:], uint16(elf.ET_EXEC))
	le.PutUint16(hdr[18:], uint16(elf.EM_Z80))
	le.PutUint32(hdr[20:], uint32(elf.EV_CURRENT))
	le.PutUint32(hdr[24:], entry)
	le.PutUint32(hdr[28:], ehdrSize)
	le.PutUint32(hdr[32:], shOff)
	le.PutUint16(hdr[40:], ehdrSize)
	le.PutUint16(hdr[42:], phdrSize)
	le.PutUint16(hdr[44:], uint16(len(segs)))
	le.PutUint16(hdr[46:], shdrSize)
	le.PutUint16(hdr[48:], 5)
	le.PutUint16(hdr[50:], 4)
	out.Write(hdr)

	for i, s := range segs {
		ph := make([]byte, phdrSize)
		le.PutUint32(ph[0:], uint32(elf.PT_LOAD))
		le.PutUint32(ph[4:], dataOff[i])
		le.PutUint32(ph[8:], s.Addr)
		le.PutUint32(ph[12:], s.Addr)
		le.PutUint32(ph[16:], uint32(len(s.Data)))
		le.PutUint32(ph[20:], uint32(len(s.Data)))
		le.PutUint32(ph[24:], uint32(elf.PF_R|elf.PF_X))
		le.PutUint32(ph[28:], 1)
		out.Write(ph)
	}
	out.Write(data.Bytes())
	out.Write(symtab.Bytes())
	out.Write(strtab)
	out.Write(shstr)

	section := func(name, typ, addr, offset, size, link, entsize uint32) {
		sh := make([]byte, shdrSize)
		le.PutUint32(sh[0:], name)
		le.PutUint32(sh[4:], typ)
		le.PutUint32(sh[12:], addr)
		le.PutUint32(sh[16:], offset)
		le.PutUint32(sh[20:], size)
		le.PutUint32(sh[24:], link)
		le.PutUint32(sh[32:], 1)
		le.PutUint32(sh[36:], entsize)
		out.Write(sh)
	}
	var textAddr, textOff, textSize uint32
	if len(segs) > 0 {
		textAddr, textOff, textSize = segs[0].Addr, dataOff[0], uint32(len(segs[0].Data))
	}
	section(0, 0, 0, 0, 0, 0, 0)
	section(1, uint32(elf.SHT_PROGBITS), textAddr, textOff, textSize, 0, 0)
	section(7, uint32(elf.SHT_SYMTAB), 0, symOff, uint32(symtab.Len()), 3, symSize)
	section(15, uint32(elf.SHT_STRTAB), 0, strOff, uint32(len(strtab)), 0, 0)
	section(23, uint32(elf.SHT_STRTAB), 0, shstrOff, uint32(len(shstr)), 0, 0)
	return out.Bytes()
}
