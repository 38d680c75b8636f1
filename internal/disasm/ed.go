package disasm

var edTable [256]template

func init() {
	for i := 0; i < 256; i++ {
		edTable[i] = edTemplate(byte(i))
	}
}

// leaPair names the destination of an ED-page LEA: BC, DE, HL, then the
// index register of the source.
func leaPair(p byte, index string) string {
	if p == 3 {
		return index
	}
	return rp(RegsHL, p)
}

// edTemplate decodes one ED-page opcode.
//
// eZ80 page 0 (x=0):
//
//	IN0 r,(n)     ED 00+8y     OUT0 (n),r    ED 01+8y
//	LEA rr,IX+d   ED 02+16p    LEA rr,IY+d   ED 03+16p
//	TST A,r       ED 04+8y     LD rr,(HL)    ED 07+16p
//	LD (HL),rr    ED 0F+16p    LD IY,(HL)    ED 31
//	LD (HL),IY    ED 3E
//
// eZ80 additions on page 1 (x=1): MLT rr, LEA IX,IY+d, LEA IY,IX+d,
// TST A,n, TSTIO n, PEA IX+d, PEA IY+d, LD MB,A, LD A,MB, SLP, STMIX and
// RSMIX. Page 2 (x=2) holds the block instructions.
func edTemplate(b byte) template {
	x, y, z, p, q := fields(b)
	r := reg8[RegsHL]

	switch x {
	case 0:
		switch z {
		case 0:
			if y == 6 {
				return none
			}
			return op("IN0 " + r[y] + ",({n})")
		case 1:
			if y == 6 {
				return op("LD IY,(HL)")
			}
			return op("OUT0 ({n})," + r[y])
		case 2:
			if q == 1 {
				return none
			}
			return op("LEA " + leaPair(p, "IX") + ",IX{d}")
		case 3:
			if q == 1 {
				return none
			}
			return op("LEA " + leaPair(p, "IY") + ",IY{d}")
		case 4:
			return op("TST A," + r[y])
		case 6:
			if y == 7 {
				return op("LD (HL),IY")
			}
			return none
		case 7:
			pair := rp(RegsHL, p)
			if p == 3 {
				pair = "IX"
			}
			if q == 0 {
				return op("LD " + pair + ",(HL)")
			}
			return op("LD (HL)," + pair)
		}
		return none

	case 1:
		switch z {
		case 0, 1:
			if y == 6 {
				return op(ioNames[z] + " (C)")
			}
			if z == 0 {
				return op("IN " + r[y] + ",(C)")
			}
			return op("OUT (C)," + r[y])
		case 2:
			if q == 0 {
				return op("SBC HL," + rp(RegsHL, p))
			}
			return op("ADC HL," + rp(RegsHL, p))
		case 3:
			if q == 0 {
				return op("LD{s} ({nn})," + rp(RegsHL, p))
			}
			return op("LD{s} " + rp(RegsHL, p) + ",({nn})")
		case 4:
			switch y {
			case 0:
				return op("NEG")
			case 2:
				return op("LEA IX,IY{d}")
			case 4:
				return op("TST A,{n}")
			case 6:
				return op("TSTIO {n}")
			}
			return op("MLT " + rp(RegsHL, p))
		case 5:
			switch y {
			case 1:
				return op("RETI{s}")
			case 2:
				return op("LEA IY,IX{d}")
			case 4:
				return op("PEA IX{d}")
			case 5:
				return op("LD MB,A")
			case 7:
				return op("STMIX")
			}
			return op("RETN{s}")
		case 6:
			switch y {
			case 4:
				return op("PEA IY{d}")
			case 5:
				return op("LD A,MB")
			case 6:
				return op("SLP")
			case 7:
				return op("RSMIX")
			}
			return op("IM " + im[y])
		case 7:
			return op(edMisc[y])
		}

	case 2:
		if y < 4 {
			if z >= 2 && z <= 4 {
				return op(block2[y][z-2] + "{s}")
			}
			return none
		}
		if z <= 4 {
			return op(block1[y-4][z] + "{s}")
		}
		return none

	case 3:
		switch b {
		case 0xC7:
			return op("LD I,HL")
		case 0xD7:
			return op("LD HL,I")
		}
	}
	return none
}
