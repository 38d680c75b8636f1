package disasm

import "strconv"

// cbTables holds the CB page for each register set. The IX and IY pages
// are the DD CB d op and FD CB d op forms, where only the memory operand
// (z=6) is defined.
var cbTables [3][256]template

func init() {
	for rs := RegsHL; rs <= RegsIY; rs++ {
		for i := 0; i < 256; i++ {
			cbTables[rs][i] = cbTemplate(byte(i), rs)
		}
	}
}

func cbTemplate(b byte, rs RegisterSet) template {
	x, y, z, _, _ := fields(b)
	if rs != RegsHL && z != 6 {
		return none
	}
	operand := reg8[rs][z]
	if x == 0 {
		return op(rot[y] + " " + operand)
	}
	return op(bitOps[x-1] + " " + strconv.Itoa(int(y)) + "," + operand)
}
