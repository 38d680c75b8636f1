package disasm

// fields splits an opcode into the canonical Z80 bit fields:
//
//	x = bits 7-6, y = bits 5-3, z = bits 2-0, p = y>>1, q = y&1
func fields(b byte) (x, y, z, p, q byte) {
	x = b >> 6
	y = (b >> 3) & 7
	z = b & 7
	p = y >> 1
	q = y & 1
	return
}

// reg8 holds the 8-bit operand names per register set. The indexed memory
// operand carries a displacement token.
var reg8 = [3][8]string{
	{"B", "C", "D", "E", "H", "L", "(HL)", "A"},
	{"B", "C", "D", "E", "IXH", "IXL", "(IX{d})", "A"},
	{"B", "C", "D", "E", "IYH", "IYL", "(IY{d})", "A"},
}

var (
	cc      = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	alu     = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	rot     = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
	bitOps  = [3]string{"BIT", "RES", "SET"}
	incDec  = [2]string{"INC", "DEC"}
	im      = [4]string{"0", "0/1", "1", "2"}
	accOps  = [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}
	edMisc  = [8]string{"LD I,A", "LD R,A", "LD A,I", "LD A,R", "RRD", "RLD", "NOP", "NOP"}
	ioNames = [2]string{"IN", "OUT"}
)

// Block instructions: rows are the block group (increment, decrement and
// their repeating forms), columns the operation.
var (
	block1 = [4][5]string{
		{"LDI", "CPI", "INI", "OUTI", "OUTI2"},
		{"LDD", "CPD", "IND", "OUTD", "OUTD2"},
		{"LDIR", "CPIR", "INIR", "OTIR", "OTI2R"},
		{"LDDR", "CPDR", "INDR", "OTDR", "OTD2R"},
	}
	block2 = [4][3]string{
		{"INIM", "OTIM", "INI2"},
		{"INDM", "OTDM", "IND2"},
		{"INIMR", "OTIMR", "INI2R"},
		{"INDMR", "OTDMR", "IND2R"},
	}
)

// rp returns the register pair for p in the BC, DE, HL, SP group.
func rp(rs RegisterSet, p byte) string {
	switch p {
	case 0:
		return "BC"
	case 1:
		return "DE"
	case 2:
		return rs.String()
	}
	return "SP"
}

// rp2 returns the register pair for p in the BC, DE, HL, AF group.
func rp2(rs RegisterSet, p byte) string {
	if p == 3 {
		return "AF"
	}
	return rp(rs, p)
}

// other returns the index register not selected by rs.
func other(rs RegisterSet) string {
	if rs == RegsIX {
		return "IY"
	}
	return "IX"
}
