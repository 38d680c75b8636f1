package disasm

import (
	"fmt"
	"strings"
)

// Page names an opcode table for OpcodeMap.
type Page uint8

const (
	PageBase Page = iota
	PageIX
	PageIY
	PageCB
	PageIXCB
	PageIYCB
	PageED
)

var pageNames = [...]string{"base", "dd", "fd", "cb", "ddcb", "fdcb", "ed"}

func (p Page) String() string {
	if int(p) < len(pageNames) {
		return pageNames[p]
	}
	return fmt.Sprintf("page(%d)", uint8(p))
}

// Pages lists every opcode table in display order.
func Pages() []Page {
	return []Page{PageBase, PageIX, PageIY, PageCB, PageIXCB, PageIYCB, PageED}
}

// ParsePage looks up a page by name (base, dd, fd, cb, ddcb, fdcb, ed).
func ParsePage(name string) (Page, error) {
	for i, n := range pageNames {
		if strings.EqualFold(n, name) {
			return Page(i), nil
		}
	}
	return PageBase, fmt.Errorf("unknown opcode page %q", name)
}

// OpcodeMap returns the 256 cells of an opcode table with operands shown as
// placeholders (n, nn, e, +d). Unrepresented opcodes are empty.
func OpcodeMap(p Page) [256]string {
	var tbl *[256]template
	switch p {
	case PageIX:
		tbl = &baseTables[RegsIX]
	case PageIY:
		tbl = &baseTables[RegsIY]
	case PageCB:
		tbl = &cbTables[RegsHL]
	case PageIXCB:
		tbl = &cbTables[RegsIX]
	case PageIYCB:
		tbl = &cbTables[RegsIY]
	case PageED:
		tbl = &edTable
	default:
		tbl = &baseTables[RegsHL]
	}
	var out [256]string
	for i, t := range tbl {
		out[i] = t.String()
	}
	return out
}
