// Package elfx extracts loadable segments and symbols from ELF objects
// produced by eZ80 toolchains.
package elfx

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// AddressLimit is one past the last byte of the 24-bit address space.
const AddressLimit = 1 << 24

// ErrNoSegments reports an object without loadable file contents.
var ErrNoSegments = errors.New("elf has no loadable segments")

type Segment struct {
	Addr  uint32
	Data  []byte
	Flags elf.ProgFlag
}

func (s Segment) End() uint32 {
	return s.Addr + uint32(len(s.Data))
}

type Symbol struct {
	Name string
	Addr uint32
	Func bool
}

type Image struct {
	Machine  elf.Machine
	Entry    uint32
	Segments []Segment
	Symbols  []Symbol
}

// IsELF reports whether data starts with the ELF magic.
func IsELF(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], []byte(elf.ELFMAG))
}

// Parse reads the PT_LOAD segments and the symbol table of an ELF object.
// Segments are sorted by address; addresses must fit in 24 bits.
func Parse(data []byte) (*Image, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open elf: %w", err)
	}
	defer f.Close()

	if f.Machine != elf.EM_Z80 {
		slog.Warn("ELF machine is not Z80", "machine", f.Machine)
	}
	im := &Image{Machine: f.Machine, Entry: uint32(f.Entry)}

	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Filesz == 0 {
			continue
		}
		if p.Paddr+p.Filesz > AddressLimit {
			return nil, fmt.Errorf("segment at %#x+%#x exceeds the 24-bit address space", p.Paddr, p.Filesz)
		}
		buf := make([]byte, p.Filesz)
		if _, err := p.ReadAt(buf, 0); err != nil {
			return nil, fmt.Errorf("read segment at %#x: %w", p.Paddr, err)
		}
		// Load addresses; virtual addresses may differ for banked code.
		im.Segments = append(im.Segments, Segment{Addr: uint32(p.Paddr), Data: buf, Flags: p.Flags})
	}
	if len(im.Segments) == 0 {
		return nil, ErrNoSegments
	}
	sort.Slice(im.Segments, func(i, j int) bool { return im.Segments[i].Addr < im.Segments[j].Addr })

	im.loadSymbols(f)
	return im, nil
}

// loadSymbols keeps named function and object symbols. A stripped object
// simply has none.
func (im *Image) loadSymbols(f *elf.File) {
	syms, err := f.Symbols()
	if err != nil {
		return
	}
	for _, sym := range syms {
		typ := elf.ST_TYPE(sym.Info)
		if sym.Name == "" || sym.Section == elf.SHN_UNDEF || (typ != elf.STT_FUNC && typ != elf.STT_NOTYPE && typ != elf.STT_OBJECT) {
			continue
		}
		if sym.Value >= AddressLimit {
			continue
		}
		im.Symbols = append(im.Symbols, Symbol{Name: sym.Name, Addr: uint32(sym.Value), Func: typ == elf.STT_FUNC})
	}
	sort.SliceStable(im.Symbols, func(i, j int) bool { return im.Symbols[i].Addr < im.Symbols[j].Addr })
}

// Flatten lays the segments out contiguously from the lowest address,
// filling gaps with fill.
func (im *Image) Flatten(fill byte) (uint32, []byte) {
	base := im.Segments[0].Addr
	var end uint32
	for _, s := range im.Segments {
		if s.End() > end {
			end = s.End()
		}
	}
	out := bytes.Repeat([]byte{fill}, int(end-base))
	for _, s := range im.Segments {
		copy(out[s.Addr-base:], s.Data)
	}
	return base, out
}

// SymbolMap indexes symbol names by address. Functions win over other
// symbols at the same address; otherwise the first name is kept.
func (im *Image) SymbolMap() map[uint32]string {
	m := make(map[uint32]string, len(im.Symbols))
	fn := make(map[uint32]bool, len(im.Symbols))
	for _, s := range im.Symbols {
		if _, ok := m[s.Addr]; ok && (fn[s.Addr] || !s.Func) {
			continue
		}
		m[s.Addr] = s.Name
		fn[s.Addr] = s.Func
	}
	return m
}
