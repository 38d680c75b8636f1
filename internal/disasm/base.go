package disasm

// baseTables holds the unprefixed page (RegsHL) and the DD (RegsIX) and
// FD (RegsIY) pages. DD and FD only swap the register set; they share the
// same decomposition.
var baseTables [3][256]template

func init() {
	for rs := RegsHL; rs <= RegsIY; rs++ {
		for i := 0; i < 256; i++ {
			baseTables[rs][i] = baseTemplate(byte(i), rs)
		}
	}
}

// baseTemplate decodes one base-page opcode under the register set rs.
//
// eZ80 additions sharing the classic bit positions:
//
//	LD rr,(IX/IY+d)   DD/FD 07 17 27 37   x=0 z=7 q=0
//	LD (IX/IY+d),rr   DD/FD 0F 1F 2F 3F   x=0 z=7 q=1
//	LD IY,(IX+d)      DD 31 (FD 31 LD IX,(IY+d))
//	LD (IX+d),IY      DD 3E (FD 3E LD (IY+d),IX)
//	.SIS .LIS .SIL .LIL  40 49 52 5B      x=1 y=z y<4
func baseTemplate(b byte, rs RegisterSet) template {
	x, y, z, p, q := fields(b)
	r := reg8[rs]
	idx := rs.String()

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return op("NOP")
			case 1:
				return op("EX AF,AF'")
			case 2:
				return jump("DJNZ {e}")
			case 3:
				return jump("JR {e}")
			}
			return jump("JR " + cc[y-4] + ",{e}")
		case 1:
			if rs != RegsHL && b == 0x31 {
				return op("LD " + other(rs) + ",(" + idx + "{d})")
			}
			if q == 0 {
				return op("LD{s} " + rp(rs, p) + ",{nn}")
			}
			return op("ADD{s} " + idx + "," + rp(rs, p))
		case 2:
			switch {
			case q == 0 && p == 0:
				return op("LD (BC),A")
			case q == 0 && p == 1:
				return op("LD (DE),A")
			case q == 0 && p == 2:
				return op("LD{s} ({nn})," + idx)
			case q == 0:
				return op("LD{s} ({nn}),A")
			case p == 0:
				return op("LD A,(BC)")
			case p == 1:
				return op("LD A,(DE)")
			case p == 2:
				return op("LD{s} " + idx + ",({nn})")
			}
			return op("LD{s} A,({nn})")
		case 3:
			return op(incDec[q] + "{s} " + rp(rs, p))
		case 4, 5:
			return op(incDec[z-4] + " " + r[y])
		case 6:
			if rs != RegsHL && y == 7 {
				return op("LD (" + idx + "{d})," + other(rs))
			}
			return op("LD " + r[y] + ",{n}")
		case 7:
			if rs == RegsHL {
				return op(accOps[y])
			}
			pair := rp(RegsHL, p)
			if p == 3 {
				pair = idx
			}
			if q == 0 {
				return op("LD " + pair + ",(" + idx + "{d})")
			}
			return op("LD (" + idx + "{d})," + pair)
		}

	case 1:
		// Mode select must be ruled out before HALT and the load group.
		if y == z && y < 4 {
			return modeSelect(Suffix(y + 1))
		}
		if y == 6 && z == 6 {
			return op("HALT")
		}
		if rs != RegsHL && y == 6 {
			return op("LD{s} (" + idx + "{d})," + reg8[RegsHL][z])
		}
		if rs != RegsHL && z == 6 {
			return op("LD{s} " + reg8[RegsHL][y] + ",(" + idx + "{d})")
		}
		return op("LD{s} " + r[y] + "," + r[z])

	case 2:
		return op(alu[y] + " A," + r[z])

	case 3:
		switch z {
		case 0:
			return op("RET{s} " + cc[y])
		case 1:
			if q == 0 {
				return op("POP{s} " + rp2(rs, p))
			}
			switch p {
			case 0:
				return op("RET{s}")
			case 1:
				return op("EXX")
			case 2:
				return op("JP{s} (" + idx + ")")
			}
			return op("LD{s} SP," + idx)
		case 2:
			return jump("JP{s} " + cc[y] + ",{nn}")
		case 3:
			switch y {
			case 0:
				return jump("JP{s} {nn}")
			case 1:
				return prefixed(0xCB)
			case 2:
				return op("OUT ({n}),A")
			case 3:
				return op("IN A,({n})")
			case 4:
				return op("EX (SP)," + idx)
			case 5:
				return op("EX DE,HL")
			case 6:
				return op("DI")
			}
			return op("EI")
		case 4:
			return call("CALL{s} " + cc[y] + ",{nn}")
		case 5:
			if q == 0 {
				return op("PUSH{s} " + rp2(rs, p))
			}
			switch p {
			case 0:
				return call("CALL{s} {nn}")
			case 1:
				return prefixed(0xDD)
			case 2:
				return prefixed(0xED)
			}
			return prefixed(0xFD)
		case 6:
			return op(alu[y] + " A,{n}")
		case 7:
			return restart(uint32(y) << 3)
		}
	}
	return none
}
